package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sales-keeper/models"
)

// roleClaims are the claims of every token issued by the server: the
// registered claims plus the caller's role.
type roleClaims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The token carries iss, sub (the user ID), iat, exp (now plus
// tokenDuration) and the private "role" claim. Every parameter is required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-sales-keeper", 42, models.RoleAgent, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || !role.Valid() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &roleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   models.SubjectFromUserID(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		Role:             role,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), issuer and
// expiry of tokenString and extracts the user ID and role.
//
// A token without a numeric subject or with an unknown role is rejected.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &roleClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := models.UserIDFromSubject(claims.Subject)
	if err != nil {
		return models.Token{}, err
	}

	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("%w in token: %q", models.ErrUnknownRole, claims.Role)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		Role:             claims.Role,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
