package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnhub/learnhub-backend/internal/model"
)

// Sentinel errors surfaced by repositories.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found")
)

const uniqueViolation = "23505"

// AccountRepository persists one account role. Admins and users share a
// schema but live in disjoint tables, so the same repository serves both,
// parameterized by table name.
type AccountRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewAdminRepository returns the repository backed by the admins table.
func NewAdminRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool, table: "admins"}
}

// NewUserRepository returns the repository backed by the users table.
func NewUserRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool, table: "users"}
}

// Create inserts a new account. A duplicate email surfaces as ErrEmailTaken,
// enforced by the table's unique index rather than a racy pre-check.
func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (email, first_name, last_name, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`, r.table)

	err := r.pool.QueryRow(ctx, query, a.Email, a.FirstName, a.LastName, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail fetches an account by email, ErrAccountNotFound if absent.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := fmt.Sprintf(
		`SELECT id, email, first_name, last_name, password_hash, created_at, updated_at
		 FROM %s WHERE email = $1`, r.table)

	var a model.Account
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
