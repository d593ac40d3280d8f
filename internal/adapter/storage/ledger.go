package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type LedgerRepository struct {
	db *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Transfer moves amount from one account to the other and appends exactly
// one transaction_log row, all inside a single transaction.
//
// Unless force is set, zero and negative amounts are refused up front; force
// lets privileged callers reverse a transfer by sending a negative amount.
// The solvency check is never skipped, force or not. The row lock on the
// source account serializes concurrent debits so the second transfer sees
// the first one's effect and can never overdraw.
func (r *LedgerRepository) Transfer(ctx context.Context, from, to uuid.UUID, amount int64, force bool) (uuid.UUID, error) {
	if err := domain.ValidateTransferAmount(amount, force); err != nil {
		return uuid.Nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, dbErr(err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx, `SELECT balance FROM account WHERE id = $1 FOR UPDATE`, from).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, domain.NotFound("account")
	}
	if err != nil {
		return uuid.Nil, dbErr(err)
	}

	if balance < amount {
		return uuid.Nil, domain.InsufficientFunds()
	}

	if _, err := tx.Exec(ctx, `UPDATE account SET balance = balance - $1 WHERE id = $2`, amount, from); err != nil {
		return uuid.Nil, dbErr(err)
	}

	tag, err := tx.Exec(ctx, `UPDATE account SET balance = balance + $1 WHERE id = $2`, amount, to)
	if err != nil {
		return uuid.Nil, dbErr(err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, domain.NotFound("account")
	}

	recordID, err := domain.NewKey()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transaction_log (id, from_id, to_id, amount) VALUES ($1, $2, $3, $4)`,
		recordID, from, to, amount)
	if err != nil {
		return uuid.Nil, dbErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, dbErr(err)
	}

	return recordID, nil
}

// Records lists the audit entries touching an account, newest first. The log
// itself is append-only; this is a read-only view over it.
func (r *LedgerRepository) Records(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.TransferRecord, error) {
	query := `
		SELECT id, from_id, to_id, amount
		FROM transaction_log
		WHERE from_id = $1 OR to_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	var records []domain.TransferRecord
	for rows.Next() {
		var rec domain.TransferRecord
		if err := rows.Scan(&rec.ID, &rec.FromID, &rec.ToID, &rec.Amount); err != nil {
			return nil, dbErr(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr(err)
	}

	return records, nil
}
