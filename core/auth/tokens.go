// Package auth verifies the bearer tokens presented to the API and logs learners in.
//
// Route handlers only depend on TokenVerifier and TokenIssuer. StaticTokens reproduces the mock
// backend's single hard-coded token; JWTTokens is a drop-in replacement issuing signed, expiring tokens.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trezcool/solvo/core/user"
)

// StaticToken is the only token accepted by StaticTokens by default.
const StaticToken = "mock-token-123"

var (
	// errors
	ErrInvalidToken = errors.New("invalid token")
)

type (
	// Principal is whoever a verified token was issued to.
	Principal struct {
		UserID int
		Email  string
	}

	TokenVerifier interface {
		Verify(ctx context.Context, token string) (Principal, error)
	}

	TokenIssuer interface {
		Issue(ctx context.Context, usr user.User) (string, error)
	}

	Tokens interface {
		TokenIssuer
		TokenVerifier
	}
)

// StaticTokens issues and accepts one fixed token, whoever logs in.
type StaticTokens struct {
	token []byte
}

var _ Tokens = (*StaticTokens)(nil)

func NewStaticTokens(token string) *StaticTokens {
	return &StaticTokens{token: []byte(token)}
}

func (st *StaticTokens) Issue(context.Context, user.User) (string, error) {
	return string(st.token), nil
}

func (st *StaticTokens) Verify(_ context.Context, token string) (Principal, error) {
	if len(st.token) == 0 || subtle.ConstantTimeCompare([]byte(token), st.token) == 0 {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: user.CurrentID}, nil
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// JWTTokens issues HS256 signed JWTs.
type JWTTokens struct {
	issuer  string
	key     []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

var _ Tokens = (*JWTTokens)(nil)

func NewJWTTokens(issuer string, secretKey []byte, ttl time.Duration) *JWTTokens {
	return &JWTTokens{issuer: issuer, key: secretKey, ttl: ttl, nowFunc: time.Now}
}

func (jt *JWTTokens) Issue(_ context.Context, usr user.User) (string, error) {
	now := jt.nowFunc()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jt.issuer,
			Subject:   strconv.Itoa(usr.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jt.ttl)),
		},
		Email: usr.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jt.key)
}

func (jt *JWTTokens) Verify(_ context.Context, token string) (Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(*jwt.Token) (interface{}, error) { return jt.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jt.issuer),
		jwt.WithTimeFunc(jt.nowFunc),
	)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: id, Email: claims.Email}, nil
}
