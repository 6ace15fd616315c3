package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkazarov/libkeeper/internal/dbx"
	"github.com/dkazarov/libkeeper/internal/server/repositories/credentials"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Binding to DBTX (instead of *sql.DB)
// lets services run repositories inside transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Credentials(db dbx.DBTX) credentials.Repository
}
