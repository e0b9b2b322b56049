// Package jwt issues and verifies HS256 JSON Web Tokens.
package jwt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the subject, audience and expiry of a token.
type Claims struct {
	gojwt.RegisteredClaims
}

// NewClaims builds claims expiring at exp, issued now, with a random ID.
func NewClaims(sub, aud string, exp time.Time) Claims {
	now := time.Now()
	return Claims{gojwt.RegisteredClaims{
		Subject:   sub,
		Audience:  gojwt.ClaimStrings{aud},
		ExpiresAt: gojwt.NewNumericDate(exp),
		IssuedAt:  gojwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}}
}

// Sign returns the compact HS256 token for claims.
func Sign(claims Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", kerrors.ErrMissingSecret
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and audience and returns the claims.
func Verify(token, audience string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, kerrors.ErrMissingSecret
	}
	claims := &Claims{}
	_, err := gojwt.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithAudience(audience),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrAuthenticationFailed, err)
	}
	return claims, nil
}

var expiryPattern = regexp.MustCompile(`^(\d+)d(\d+)h(\d+)m$`)

// ParseExpiry turns "<days>d<hours>h<minutes>m", e.g. "1d4h0m", into a duration.
func ParseExpiry(s string) (time.Duration, error) {
	m := expiryPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected e.g. 1d4h0m)", kerrors.ErrInvalidExpiry, s)
	}
	days, err1 := strconv.Atoi(m[1])
	hours, err2 := strconv.Atoi(m[2])
	minutes, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("%w: %q is out of range", kerrors.ErrInvalidExpiry, s)
	}
	return time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute, nil
}
