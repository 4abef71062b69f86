package auth_test

import (
	"strings"
	"testing"
	"time"

	"shipping/internal/adapters/out/auth"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newIdentity(t *testing.T) identity.Identity {
	t.Helper()
	email, err := kernel.NewEmail("student@campus.edu")
	require.NoError(t, err)
	who, err := identity.NewIdentity(kernel.NewUUID(), email)
	require.NoError(t, err)
	return who
}

func TestNewJWTIssuer_RejectsBadConfig(t *testing.T) {
	_, err := auth.NewJWTIssuer("", time.Hour, &fixedClock{})
	require.Error(t, err)
	_, err = auth.NewJWTIssuer("secret", 0, &fixedClock{})
	require.Error(t, err)
}

func TestJWTIssuer_IssueThenParse(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)}
	issuer, err := auth.NewJWTIssuer("secret", 24*time.Hour, clock)
	require.NoError(t, err)
	who := newIdentity(t)

	token, err := issuer.Issue(who)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, clock.t.Add(24*time.Hour), token.ExpiresAt)

	parsed, err := issuer.Parse(token.Value)
	require.NoError(t, err)
	assert.Equal(t, token.ID, parsed.TokenID)
	assert.Equal(t, who.ID(), parsed.Identity.ID())
	assert.Equal(t, who.Email(), parsed.Identity.Email())
	assert.True(t, token.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestJWTIssuer_TokensAreUnique(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, &fixedClock{t: time.Now()})
	require.NoError(t, err)
	who := newIdentity(t)

	a, err := issuer.Issue(who)
	require.NoError(t, err)
	b, err := issuer.Issue(who)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJWTIssuer_Parse_Expired(t *testing.T) {
	clock := &fixedClock{t: time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)}
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, clock)
	require.NoError(t, err)

	token, err := issuer.Issue(newIdentity(t))
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = issuer.Parse(token.Value)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTIssuer_Parse_WrongSecret(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, clock)
	require.NoError(t, err)
	other, err := auth.NewJWTIssuer("other", time.Hour, clock)
	require.NoError(t, err)

	token, err := other.Issue(newIdentity(t))
	require.NoError(t, err)

	_, err = issuer.Parse(token.Value)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTIssuer_Parse_RejectsNoneAlgorithm(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, &fixedClock{t: time.Now()})
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "shipping",
		Subject:   kernel.NewUUID().String(),
		ID:        "jti",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTIssuer_Parse_Garbage(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, &fixedClock{t: time.Now()})
	require.NoError(t, err)

	for _, raw := range []string{"", "abc", strings.Repeat("x.", 3)} {
		_, err = issuer.Parse(raw)
		require.ErrorIs(t, err, auth.ErrInvalidToken, raw)
	}
}

func TestJWTIssuer_Issue_RequiresIdentity(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour, &fixedClock{t: time.Now()})
	require.NoError(t, err)

	_, err = issuer.Issue(identity.Identity{})
	require.ErrorIs(t, err, identity.ErrIdentityIsNotConstructed)
}
