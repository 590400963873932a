package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/repository"
)

// ErrEmailTaken is re-exported so handlers don't reach into the repository
// package for the duplicate-signup case.
var ErrEmailTaken = repository.ErrEmailTaken

// AccountStore is the persistence surface AccountService needs. Implemented
// by repository.AccountRepository for both role tables.
type AccountStore interface {
	Create(ctx context.Context, a *model.Account) error
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

// AccountService implements signup and signin for one account role. The same
// service type serves both roles; only the backing store and the signing role
// differ.
type AccountService struct {
	store AccountStore
	auth  *AuthService
	role  Role
	log   zerolog.Logger
}

func NewAccountService(store AccountStore, auth *AuthService, role Role, log zerolog.Logger) *AccountService {
	return &AccountService{
		store: store,
		auth:  auth,
		role:  role,
		log:   log.With().Str("component", "account_service").Str("role", string(role)).Logger(),
	}
}

// Signup hashes the password and creates the account. Duplicate emails
// surface as ErrEmailTaken.
func (s *AccountService) Signup(ctx context.Context, req *model.SignupRequest) (*model.Account, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("account created")
	return account, nil
}

// Signin verifies credentials and mints a role-scoped token. Unknown email
// and wrong password both collapse into ErrInvalidCredentials so callers
// cannot probe which emails are registered.
func (s *AccountService) Signin(ctx context.Context, email, password string) (string, error) {
	account, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.auth.CheckPassword(account.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.auth.GenerateToken(s.role, account.ID)
}
