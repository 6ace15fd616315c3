package credentials

import (
	"context"
	"sync"

	"github.com/dkazarov/libkeeper/internal/common"
	"github.com/dkazarov/libkeeper/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests and for running
// the server without PostgreSQL. gRPC handlers run concurrently, so access
// is guarded by an RWMutex.
type MemoryRepository struct {
	mu    sync.RWMutex
	creds map[string]models.Credential
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{creds: make(map[string]models.Credential)}
}

func (r *MemoryRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.creds[cred.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.creds[cred.Username] = *cred
	return cred, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	// return a copy so callers cannot mutate the stored record
	out := cred
	return &out, nil
}
