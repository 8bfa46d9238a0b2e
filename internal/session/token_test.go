package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opio/bpmonitor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("super-secret"), time.Hour)

	tok, err := iss.Issue(42, "SRRH-001")
	require.NoError(t, err)

	id, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("s"), time.Hour)
	a, err := iss.Issue(1, "")
	require.NoError(t, err)
	b, err := iss.Issue(1, "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("secret"), time.Minute)
	start := time.Now()
	iss.now = func() time.Time { return start }

	tok, err := iss.Issue(1, "")
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = iss.Parse(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right-secret"), time.Hour).Issue(2, "")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("wrong-secret"), time.Hour).Parse(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer([]byte("s"), time.Hour).Parse("not-a-jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewIssuer(secret, time.Hour).Parse(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_BadSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "jane",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewIssuer(secret, time.Hour).Parse(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
