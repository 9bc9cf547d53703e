package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/xid"
)

// Account is the credential record stored in the accounts collection.
// PasswordHash never leaves the package in any outward payload.
type Account struct {
	ID           ID        `bson:"_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	PatientID    ID        `bson:"patient_id" json:"patient_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type ID string

// Patient is the clinical record created alongside an Account. This package
// only ever writes it at registration; the clinical fields stay nil until
// the monitoring features fill them in.
type Patient struct {
	ID                ID        `bson:"_id"`
	AccountID         ID        `bson:"account_id"`
	Name              string    `bson:"name"`
	Email             string    `bson:"email"`
	Age               *int      `bson:"age"`
	Condition         *string   `bson:"condition"`
	AssignedClinician *string   `bson:"assigned_clinician"`
	Baseline          *Baseline `bson:"baseline"`
	CreatedAt         time.Time `bson:"created_at"`
}

// Baseline holds the reference vitals captured during onboarding.
type Baseline struct {
	HeartRate   float64   `bson:"heart_rate"`
	VocalScore  float64   `bson:"vocal_score"`
	OcularScore float64   `bson:"ocular_score"`
	RecordedAt  time.Time `bson:"recorded_at"`
}

var (
	ErrRequiredFields     = errors.New("email, password and name are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrExistingEmail      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("account not found")
)

// NewAccount normalizes the email and name and returns an Account if both
// are non-empty after normalization. The caller assigns IDs and the hash.
func NewAccount(email string, name string) (*Account, error) {
	e := normalizeEmail(email)
	n := strings.TrimSpace(name)

	if e == "" || n == "" {
		return nil, ErrRequiredFields
	}

	return &Account{Email: e, Name: n}, nil
}

// normalizeEmail produces the uniqueness key: trimmed and lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
