package auth

import (
	"context"
	"sync"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[ID]*Account
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{accounts: map[ID]*Account{}}
}

// Store mirrors the unique-email index of the production store so the
// race between pre-check and insert behaves the same under test.
func (repo *accountRepository) Store(ctx context.Context, acc *Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.accounts {
		if v.Email == acc.Email && v.ID != acc.ID {
			return ErrExistingEmail
		}
	}

	repo.accounts[acc.ID] = acc
	return nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id ID) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if acc, ok := repo.accounts[id]; ok {
		return acc, nil
	}
	return nil, ErrNotFound
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, v := range repo.accounts {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

type patientRepository struct {
	mu       sync.RWMutex
	patients map[ID]*Patient
}

func NewPatientRepository() PatientRepository {
	return &patientRepository{patients: map[ID]*Patient{}}
}

func (repo *patientRepository) Store(ctx context.Context, p *Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.patients[p.ID] = p
	return nil
}

func (repo *patientRepository) FindByID(ctx context.Context, id ID) (*Patient, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if p, ok := repo.patients[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}
