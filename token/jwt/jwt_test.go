package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/token"
	"github.com/jrsteele09/go-jobboard/token/jwt"
	"github.com/jrsteele09/go-jobboard/users"
	"github.com/stretchr/testify/require"
)

func testUser() *users.User {
	return &users.User{
		ID:          "user-1",
		Email:       "boss@example.com",
		FullName:    "Boss",
		AccountType: sessions.AccountEmployer,
	}
}

func TestCreateAndIntrospect(t *testing.T) {
	signer := token.NewHMACSigner("secret")
	creator := jwt.NewCreator(signer, time.Hour)

	raw, err := creator.CreateAccessToken(testUser())
	require.NoError(t, err)

	ti, err := jwt.Introspect(raw, signer)
	require.NoError(t, err)
	require.True(t, ti.Active)
	require.Equal(t, "user-1", utils.Value(ti.Sub))
	require.Equal(t, "employer", ti.AccountType)
	require.Equal(t, "Boss", ti.Name)
	require.NotNil(t, ti.Exp)
}

func TestIntrospect_WrongSecret(t *testing.T) {
	raw, err := jwt.NewCreator(token.NewHMACSigner("secret"), time.Hour).CreateAccessToken(testUser())
	require.NoError(t, err)

	ti, err := jwt.Introspect(raw, token.NewHMACSigner("other"))
	require.ErrorIs(t, err, jwtlib.ErrTokenSignatureInvalid)
	require.Contains(t, err.Error(), "parse token")
	require.False(t, ti.Active)
}

func TestIntrospect_Expired(t *testing.T) {
	signer := token.NewHMACSigner("secret")
	issued := time.Now().Add(-2 * time.Hour)
	jwt.NowTimeFunc = func() time.Time { return issued }
	raw, err := jwt.NewCreator(signer, time.Hour).CreateAccessToken(testUser())
	jwt.NowTimeFunc = time.Now
	require.NoError(t, err)

	ti, err := jwt.Introspect(raw, signer)
	require.ErrorIs(t, err, jwtlib.ErrTokenExpired)
	require.False(t, ti.Active)

	unverified, err := jwt.InspectUnverified(raw)
	require.NoError(t, err)
	require.False(t, unverified.Active)
	require.True(t, unverified.Expired())
	require.Equal(t, "user-1", utils.Value(unverified.Sub))
}

func TestIntrospect_Empty(t *testing.T) {
	ti, err := jwt.Introspect("  ", token.NewHMACSigner("secret"))
	require.NoError(t, err)
	require.False(t, ti.Active)
}

func TestInspectUnverified_OpaqueToken(t *testing.T) {
	_, err := jwt.InspectUnverified("not-a-jwt")
	require.ErrorIs(t, err, jwtlib.ErrTokenMalformed)
}
