package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccount(t *testing.T) {
	acc := &Account{Email: "e@m.co", Name: "Eve"}

	tests := []struct {
		email, name string
		wantErr     error
		wantAcc     *Account
	}{
		{wantErr: ErrRequiredFields},
		{email: "e@m.co", wantErr: ErrRequiredFields},
		{name: "Eve", wantErr: ErrRequiredFields},
		{email: "   ", name: "Eve", wantErr: ErrRequiredFields},
		{email: "e@m.co", name: "   ", wantErr: ErrRequiredFields},
		{email: "e@m.co", name: "Eve", wantAcc: acc},
		{email: "  E@M.Co ", name: " Eve ", wantAcc: acc},
	}

	for _, tt := range tests {
		got, err := NewAccount(tt.email, tt.name)
		assert.Equal(t, tt.wantErr, err)
		assert.Equal(t, tt.wantAcc, got)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("secret1")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, hashMatchesPassword(hash, "secret1"))
	assert.False(t, hashMatchesPassword(hash, "secret2"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err1 := hashPassword("secret1")
	h2, err2 := hashPassword("secret1")

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, h1, h2)
	assert.True(t, hashMatchesPassword(h1, "secret1"))
	assert.True(t, hashMatchesPassword(h2, "secret1"))
}
