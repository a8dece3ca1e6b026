package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndValidate(t *testing.T) {
	store := NewStore()

	token := store.Create("admin")
	assert.NotEmpty(t, token)

	username, ok := store.Validate(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestValidateUnknownToken(t *testing.T) {
	store := NewStore()
	_, ok := store.Validate("nope")
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore()
	a := store.Create("admin")
	b := store.Create("admin")
	assert.NotEqual(t, a, b)
}
