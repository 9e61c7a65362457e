package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager(TokenConfig{Secret: []byte("s3cret")})

	token, err := m.GenerateAccessToken("registrar", RoleStaff)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "registrar", claims.Subject)
	assert.True(t, claims.IsStaff())
	assert.Equal(t, "exam-assembler", claims.Issuer)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer := NewManager(TokenConfig{Secret: []byte("one")})
	verifier := NewManager(TokenConfig{Secret: []byte("two")})

	token, err := issuer.GenerateAccessToken("x", RoleStaff)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager(TokenConfig{Secret: []byte("s3cret"), AccessTTL: time.Minute})
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateAccessToken("x", RoleViewer)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManagerWithoutSecret(t *testing.T) {
	m := NewManager(TokenConfig{})
	assert.False(t, m.Enabled())

	_, err := m.GenerateAccessToken("x", RoleStaff)
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = m.ValidateAccessToken("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}
