package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/trackops/assettrack-api/pkg/jwt"
)

const (
	secret = "unit-test-secret"
	issuer = "assettrack-test"
	userID = "64f1a2b3c4d5e6f708192a3b"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "admin", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUserID, gotRole, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "admin", gotRole)
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "admin", issuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "admin", issuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, "admin", issuer, 60)
	assert.Error(t, err)
}
