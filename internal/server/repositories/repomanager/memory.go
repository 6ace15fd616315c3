package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkazarov/libkeeper/internal/dbx"
	"github.com/dkazarov/libkeeper/internal/server/repositories/credentials"
)

// MemoryRepositoryManager vends a shared in-memory credentials repository.
// It ignores the DBTX it is given; there is nothing transactional to bind.
type MemoryRepositoryManager struct {
	creds *credentials.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{creds: credentials.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Credentials(db dbx.DBTX) credentials.Repository {
	return m.creds
}
