package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var errEmptySubject = errors.New("empty subject")

// Token is a session token issued by the backend. UserID is the owner named
// by the "sub" claim and SignedString the compact form sent as the bearer
// credential.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

// GetUserID reads the owner from the subject claim.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err == nil && sub == "" {
		err = errEmptySubject
	}
	if err != nil {
		return "", fmt.Errorf("token owner: %w", err)
	}
	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
