package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-jobboard/token"
	"github.com/jrsteele09/go-jobboard/users"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const issuer = "jobboard-mock"

// Creator issues the bearer tokens handed out by the login endpoints
type Creator struct {
	signer token.Signer
	expiry time.Duration
}

func NewCreator(signer token.Signer, expiry time.Duration) *Creator {
	return &Creator{
		signer: signer,
		expiry: expiry,
	}
}

// CreateAccessToken creates a signed bearer token for user
func (c *Creator) CreateAccessToken(user *users.User) (string, error) {
	claims := jwtlib.MapClaims{
		"iss":          issuer,
		"sub":          user.ID,
		"name":         user.FullName,
		"email":        user.Email,
		"account_type": string(user.AccountType),
		"iat":          NowTimeFunc().Unix(),
		"exp":          NowTimeFunc().Add(c.expiry).Unix(),
		"jti":          uuid.New().String(),
	}

	signed, err := c.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign JWT token")
	}
	return signed, nil
}
