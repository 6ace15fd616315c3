package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkazarov/libkeeper/internal/common"
	"github.com/dkazarov/libkeeper/internal/dbx"
	"github.com/dkazarov/libkeeper/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {

	query :=
		`INSERT INTO credentials (id, username, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.ID, cred.Username, cred.PasswordHash).Scan(&cred.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query :=
		`SELECT id, username, password_hash, created_at FROM credentials
		 WHERE username = $1
		 `

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}
