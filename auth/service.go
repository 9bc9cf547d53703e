package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type service struct {
	accounts AccountRepository
	patients PatientRepository
}

func NewService(accounts AccountRepository, patients PatientRepository) Service {
	return &service{accounts: accounts, patients: patients}
}

func (svc *service) Register(ctx context.Context, r registerRequest) (Identity, error) {
	acc, err := NewAccount(r.Email, r.Name)
	if err != nil {
		return Identity{}, err
	}

	if r.Password == "" {
		return Identity{}, ErrRequiredFields
	}
	if len(r.Password) < 6 {
		return Identity{}, ErrPasswordTooShort
	}

	// Best-effort pre-check; the unique index behind Store is the real guard.
	if existing, err := svc.accounts.FindByEmail(ctx, acc.Email); existing != nil && err == nil {
		return Identity{}, ErrExistingEmail
	}

	hash, err := hashPassword(r.Password)
	if err != nil {
		return Identity{}, err
	}

	acc.ID = NewID()
	acc.PatientID = NewID()
	acc.PasswordHash = hash
	acc.CreatedAt = time.Now().UTC()

	if err := svc.accounts.Store(ctx, acc); err != nil {
		if errors.Is(err, ErrExistingEmail) {
			return Identity{}, ErrExistingEmail
		}
		return Identity{}, fmt.Errorf("error saving account: %w", err)
	}

	// No compensating delete if this fails: the account keeps the email
	// and stays without its patient record until cleaned up.
	p := &Patient{
		ID:        acc.PatientID,
		AccountID: acc.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	}
	if err := svc.patients.Store(ctx, p); err != nil {
		return Identity{}, fmt.Errorf("error saving patient record: %w", err)
	}

	return identityFromAccount(acc), nil
}

func (svc *service) Login(ctx context.Context, r loginRequest) (Identity, error) {
	email := normalizeEmail(r.Email)
	if email == "" || r.Password == "" {
		return Identity{}, ErrRequiredFields
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	acc, err := svc.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("error looking up account: %w", err)
	}
	if !hashMatchesPassword(acc.PasswordHash, r.Password) {
		return Identity{}, ErrInvalidCredentials
	}

	return identityFromAccount(acc), nil
}

func (svc *service) WhoAmI(ctx context.Context, userID string) (Identity, error) {
	id := ID(strings.TrimSpace(userID))
	if id == "" {
		return Identity{}, ErrRequiredFields
	}

	acc, err := svc.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrNotFound
		}
		return Identity{}, fmt.Errorf("error looking up account: %w", err)
	}

	return identityFromAccount(acc), nil
}

func identityFromAccount(acc *Account) Identity {
	return Identity{
		UserID:    acc.ID,
		PatientID: acc.PatientID,
		Email:     acc.Email,
		Name:      acc.Name,
	}
}
