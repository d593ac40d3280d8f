package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type PersonRepository struct {
	db *pgxpool.Pool
}

func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{db: db}
}

// Register allocates a fresh account key, creates the account row with a
// zero balance and binds the discord id to it, all in one transaction. A
// duplicate discord id rolls the whole thing back, so a failed registration
// leaves no account behind.
func (r *PersonRepository) Register(ctx context.Context, discordID domain.DiscordID) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, dbErr(err)
	}
	defer tx.Rollback(ctx)

	id, err := domain.NewKey()
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO account (id) VALUES ($1)`, id); err != nil {
		return uuid.Nil, dbErr(err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO person (id, discord_id) VALUES ($1, $2)`, id, discordID.Bytes())
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.AlreadyExists("This person is already registered!")
		}
		return uuid.Nil, dbErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, dbErr(err)
	}

	return id, nil
}

// FromDiscord resolves a discord id to its account key without mutating
// anything.
func (r *PersonRepository) FromDiscord(ctx context.Context, discordID domain.DiscordID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM person WHERE discord_id = $1`, discordID.Bytes()).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, domain.NotFound("person")
	}
	if err != nil {
		return uuid.Nil, dbErr(err)
	}
	return id, nil
}

// Info joins the person binding with its account balance.
func (r *PersonRepository) Info(ctx context.Context, id uuid.UUID) (*domain.PersonInfo, error) {
	query := `
		SELECT person.discord_id, account.balance
		FROM person INNER JOIN account ON account.id = person.id
		WHERE person.id = $1
	`

	var discordBytes []byte
	var balance int64
	err := r.db.QueryRow(ctx, query, id).Scan(&discordBytes, &balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("person")
	}
	if err != nil {
		return nil, dbErr(err)
	}

	discordID, err := domain.DiscordIDFromBytes(discordBytes)
	if err != nil {
		return nil, err
	}

	return &domain.PersonInfo{DiscordID: uint64(discordID), Balance: balance}, nil
}
