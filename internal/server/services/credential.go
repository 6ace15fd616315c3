// Package services contains server-side business logic. This file implements
// CredentialService, which handles registration of new credential records and
// verification of plaintext passwords against stored hashes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkazarov/libkeeper/internal/common"
	"github.com/dkazarov/libkeeper/internal/dbx"
	"github.com/dkazarov/libkeeper/internal/password"
	"github.com/dkazarov/libkeeper/internal/server/models"
	"github.com/dkazarov/libkeeper/internal/server/repositories/repomanager"
)

// CredentialService provides credential-related operations:
// - Register: hash a plaintext password and create a credential record
// - Verify: check a plaintext password against the stored hash
//
// Exactly one hashing scheme is configured per deployment; all records are
// written and verified under it.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      password.Hasher
}

// NewCredentialService constructs a CredentialService using repositories and
// the configured hasher.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, h password.Hasher) *CredentialService {
	return &CredentialService{db: db, repomanager: m, hasher: h}
}

// Register hashes the plaintext and creates a new credential record.
//
// Empty username or password is rejected with common.ErrorValidation before
// any store access. An existing record yields common.ErrorAlreadyExists and
// leaves the stored hash untouched. The existence check and the insert run in
// one transaction; the unique index on username is the safety net for races.
func (s *CredentialService) Register(ctx context.Context, username, plaintext string) (*models.Credential, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", common.ErrorValidation)
	}
	if plaintext == "" {
		return nil, fmt.Errorf("%w: password must not be empty", common.ErrorValidation)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	cred := &models.Credential{ID: uuid.NewString(), Username: username, PasswordHash: hash}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Credentials(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching credential: %w", err)
		}

		if _, err := repo.Create(ctx, cred); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("error creating credential: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return cred, nil
}

// Verify looks up the credential record and checks the plaintext against the
// stored hash. It is read-only against the store.
//
// Outcomes:
//   - nil: authenticated; the matched record is returned
//   - common.ErrorNotFound: no record for the username
//   - common.ErrIncorrectPassword: record found, plaintext does not match
//   - common.ErrMalformedHash: stored blob unparseable under the configured
//     scheme (e.g. written by a different one)
func (s *CredentialService) Verify(ctx context.Context, username, plaintext string) (*models.Credential, error) {
	repo := s.repomanager.Credentials(s.db)

	cred, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(plaintext, cred.PasswordHash)
	if err != nil {
		if errors.Is(err, common.ErrMalformedHash) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrIncorrectPassword
	}

	return cred, nil
}
