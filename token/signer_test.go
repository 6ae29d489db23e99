package token_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-jobboard/token"
	"github.com/stretchr/testify/require"
)

func TestHMACSigner_SignAndVerify(t *testing.T) {
	signer := token.NewHMACSigner("secret")
	raw, err := signer.Sign(jwt.MapClaims{"sub": "user-1"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(raw, signer.GetVerificationKey)
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, jwt.SigningMethodHS256, signer.GetSigningMethod())
}

func TestHMACSigner_RejectsOtherSigningMethods(t *testing.T) {
	signer := token.NewHMACSigner("secret")
	other := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{})

	key, err := signer.GetVerificationKey(other)
	require.Nil(t, key)
	require.EqualError(t, err, "unexpected signing method: RS256")
}
