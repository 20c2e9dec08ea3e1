package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)

	hashed, err := svc.HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hashed)

	assert.NoError(t, svc.ComparePassword(hashed, "senha-secreta"))
	assert.Error(t, svc.ComparePassword(hashed, "senha-errada"))
}

func TestHashPassword_Empty(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)

	_, err := svc.HashPassword("")
	assert.Error(t, err)
}

func TestComparePassword_Empty(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)

	assert.Error(t, svc.ComparePassword("", "x"))
	assert.Error(t, svc.ComparePassword("$2a$10$abcdefghijklmnopqrstuv", ""))
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)

	first, err := svc.HashPassword("senha-secreta")
	require.NoError(t, err)
	second, err := svc.HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
