package auth

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/solvo/core/user"
)

// The one account the mock backend knows about.
const (
	DemoEmail    = "rahul@example.com"
	demoPassword = "password123"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Credentials struct {
	Email        string
	PasswordHash []byte
}

func (c *Credentials) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	return nil
}

func (c *Credentials) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(pwd))
}

type Authenticator struct {
	creds   Credentials
	userSvc *user.Service
	issuer  TokenIssuer
}

// NewAuthenticator returns an Authenticator accepting only the demo account.
func NewAuthenticator(userSvc *user.Service, issuer TokenIssuer) (*Authenticator, error) {
	creds := Credentials{Email: DemoEmail}
	if err := creds.SetPassword(demoPassword); err != nil {
		return nil, pkgerrors.Wrap(err, "hashing demo password")
	}
	return &Authenticator{creds: creds, userSvc: userSvc, issuer: issuer}, nil
}

// Login checks email & password as given (no trimming, no case folding)
// and returns a token for the dashboard's learner.
func (a *Authenticator) Login(ctx context.Context, email, pwd string) (string, user.User, error) {
	if email != a.creds.Email {
		return "", user.User{}, ErrInvalidCredentials
	}
	if err := a.creds.CheckPassword(pwd); err != nil {
		return "", user.User{}, ErrInvalidCredentials
	}

	usr, err := a.userSvc.Current()
	if err != nil {
		return "", user.User{}, pkgerrors.Wrap(err, "getting current user")
	}
	token, err := a.issuer.Issue(ctx, usr)
	if err != nil {
		return "", user.User{}, pkgerrors.Wrap(err, "issuing token")
	}
	return token, usr, nil
}
