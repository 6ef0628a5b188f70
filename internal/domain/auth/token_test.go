package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appraisal/internal/domain/goals"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1", RoleName: goals.RoleManager, Name: "Ravi"}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, goals.RoleManager, claims.RoleName)
	assert.Equal(t, "Ravi", claims.Name)
	assert.Equal(t, "u1", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenRequiresUser(t *testing.T) {
	token, err := GenerateToken("secret", Claims{RoleName: goals.RoleEmployee}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserContextMember(t *testing.T) {
	user := UserContext{UserID: "m1", RoleName: goals.RoleManager, Name: "Ravi"}
	assert.True(t, user.IsManager())
	assert.Equal(t, goals.Member{ID: "m1", Name: "Ravi", Role: goals.RoleManager}, user.Member())
}
