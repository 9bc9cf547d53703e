package auth

import "context"

type Service interface {
	Register(ctx context.Context, r registerRequest) (Identity, error)
	Login(ctx context.Context, r loginRequest) (Identity, error)
	WhoAmI(ctx context.Context, userID string) (Identity, error)
}

// AccountRepository is the credential store contract. Store must enforce
// email uniqueness itself and return ErrExistingEmail on a violation; the
// service's own pre-check is only a best-effort optimization.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id ID) (*Account, error)
	Store(ctx context.Context, acc *Account) error
}

// PatientRepository is the linked-record store contract.
type PatientRepository interface {
	Store(ctx context.Context, p *Patient) error
}

// Identity is the public projection of an Account returned by every
// service operation.
type Identity struct {
	UserID    ID     `json:"user_id"`
	PatientID ID     `json:"patient_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
