package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Balance reads the current balance outside any transfer. Reads here are not
// snapshot-consistent with an in-flight transfer; callers needing that must
// read after the transfer commits.
func (r *AccountRepository) Balance(ctx context.Context, id uuid.UUID) (domain.Money, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM account WHERE id = $1`, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.NotFound("account")
	}
	if err != nil {
		return 0, dbErr(err)
	}
	return domain.Money(balance), nil
}

// Mint unconditionally adds amount to the account, any sign, no floor and no
// audit record. Deduplication on retry is the caller's problem.
func (r *AccountRepository) Mint(ctx context.Context, id uuid.UUID, amount int64) error {
	_, err := r.db.Exec(ctx, `UPDATE account SET balance = balance + $1 WHERE id = $2`, amount, id)
	if err != nil {
		return dbErr(err)
	}
	return nil
}

// Count reports how many accounts exist.
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM account`).Scan(&count); err != nil {
		return 0, dbErr(err)
	}
	return count, nil
}
