package tokens

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestIssue_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	token, err := Issue("gate_volunteer_1", "volunteer", testSecret, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "gate_volunteer_1", claims.Subject)
	assert.Equal(t, "volunteer", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, now.Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestAccessClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-AccessTokenTTL - time.Minute)
	token, err := Issue("admin", "admin", testSecret, issued)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessClaimsFromToken_Tampered(t *testing.T) {
	t.Parallel()

	token, err := Issue("gate_volunteer_1", "volunteer", testSecret, time.Now())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one character of the claims segment; the signature no longer
	// matches.
	payload := []byte(parts[1])
	if payload[3] == 'A' {
		payload[3] = 'B'
	} else {
		payload[3] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := AccessClaimsFromToken(tampered, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Issue("admin", "admin", testSecret, time.Now())
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, []byte("another-secret"))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := AccessClaimsFromToken("not-a-jwt", testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
