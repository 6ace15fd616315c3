package credentials

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkazarov/libkeeper/internal/common"
	"github.com/dkazarov/libkeeper/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs("id1", "alice", "$argon2id$...").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	cred, err := repo.Create(context.Background(), &models.Credential{
		ID: "id1", Username: "alice", PasswordHash: "$argon2id$...",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !cred.CreatedAt.Equal(now) {
		t.Fatalf("created_at not scanned: %v", cred.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery("INSERT INTO credentials").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Credential{
		ID: "id1", Username: "alice", PasswordHash: "h",
	})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery("INSERT INTO credentials").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), &models.Credential{
		ID: "id1", Username: "alice", PasswordHash: "h",
	})
	if err == nil || errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want generic db error, got %v", err)
	}
}

func TestPostgresGetByUsername_Found(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow("id1", "alice", "hash", now)
	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM credentials").
		WithArgs("alice").
		WillReturnRows(rows)

	cred, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if cred.ID != "id1" || cred.Username != "alice" || cred.PasswordHash != "hash" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestPostgresGetByUsername_NotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM credentials").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
