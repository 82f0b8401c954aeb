package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSubject is returned for a token subject that is not a user ID.
var ErrInvalidSubject = errors.New("token subject is not a user id")

// Token is an issued or verified JWT. Besides the registered claims it
// carries the caller's [Role], so every authenticated request knows which
// role sensitive values are disclosed to.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is the private "role" claim.
	Role Role `json:"role"`

	// SignedString is the compact JWS sent as "Authorization: Bearer".
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// UserIDFromSubject parses a "sub" claim into a positive user ID.
func UserIDFromSubject(subject string) (int64, error) {
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}
	return id, nil
}

// SubjectFromUserID is the inverse of [UserIDFromSubject].
func SubjectFromUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (t *Token) String() string {
	return t.SignedString
}
