// Package services contains the server-side business logic. This file
// implements UserService: signup, credential checks, token minting and
// resolution, and user CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/dogshelter/internal/common"
	"github.com/avolkov/dogshelter/internal/dbx"
	"github.com/avolkov/dogshelter/internal/server/auth"
	"github.com/avolkov/dogshelter/internal/server/config"
	"github.com/avolkov/dogshelter/internal/server/models"
	"github.com/avolkov/dogshelter/internal/server/repositories/repomanager"
	"github.com/avolkov/dogshelter/internal/server/repositories/users"
)

// UserService provides account operations:
//   - SignUp: create users (password hashed, disabled by default)
//   - Login: verify credentials and mint a bearer token
//   - ResolveToken / RequireActive: the auth-guard half used by middleware
//   - List/GetByID/Update/Delete: plain CRUD
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	signingMethod jwt.SigningMethod
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server
// config. It fails if the configured signing algorithm is unknown.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	method, err := auth.SigningMethod(cfg.SigningAlgorithm)
	if err != nil {
		return nil, err
	}

	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		signingMethod: method,
		tokenValidity: cfg.TokenValidityDuration,
	}, nil
}

// SignUp registers a new account. A duplicate email yields
// common.ErrorAlreadyExists. The stored record starts disabled; activation
// happens outside this service.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{Email: email, Password: hash})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair. An unknown email and a wrong
// password both read as common.ErrorUnauthorized so the response does not
// leak account existence.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// Login authenticates and mints a bearer token carrying the user's email as
// subject. Disabled users cannot log in.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	if user.Disabled {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.signingMethod, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolveToken validates a bearer token and resolves its subject to a user
// record. Invalid, expired, or malformed tokens, and tokens whose subject no
// longer exists, all yield common.ErrorUnauthorized.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	subject, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// RequireActive rejects disabled accounts.
func (s *UserService) RequireActive(user *models.User) error {
	if user.Disabled {
		return common.ErrorInactiveUser
	}
	return nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, params users.UpdateParams) (*models.User, error) {
	return s.repomanager.Users(s.db).Update(ctx, id, params)
}

// Delete removes the account and its dogs in one transaction, so a failure
// midway never leaves orphaned dog rows behind.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Dogs(tx).DeleteByUser(ctx, id); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, id)
	})
}
