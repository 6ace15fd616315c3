// Package credentials provides storage for credential records, keyed by
// exact username match.
package credentials

import (
	"context"

	"github.com/dkazarov/libkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new credential record. A record with the same
	// username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)

	// GetByUsername performs a point lookup by exact, case-sensitive
	// username. Absent records yield common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)
}
