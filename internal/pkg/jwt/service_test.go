package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)
	sid := uuid.New()

	tok, exp, err := svc.GenerateSessionToken(sid, "Ada", "ada@example.com", "recruiter")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	c, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, sid, c.SessionID)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, "recruiter", c.Role)
	assert.Equal(t, TokenTypeSession, c.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	tok, _, err := svc.GenerateSessionToken(uuid.New(), "Ada", "", "student")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, _, err := NewHMACService("a", time.Hour).GenerateSessionToken(uuid.New(), "Ada", "", "student")
	require.NoError(t, err)

	_, err = NewHMACService("b", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Garbage(t *testing.T) {
	_, err := NewHMACService("a", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Misconfigured(t *testing.T) {
	_, _, err := NewHMACService("", time.Hour).GenerateSessionToken(uuid.New(), "Ada", "", "student")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
