package jwt

import (
	"errors"
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

var secret = []byte("this_is_secret")

func TestSignVerify_RoundTrip(t *testing.T) {
	token, err := Sign(NewClaims("acme", "device1", time.Now().Add(time.Hour)), secret)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := Verify(token, "device1", secret)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "acme" {
		t.Errorf("Expected subject acme, got %q", claims.Subject)
	}
	if claims.ID == "" {
		t.Error("Expected a token ID")
	}
}

func TestVerify_Rejections(t *testing.T) {
	valid, _ := Sign(NewClaims("acme", "device1", time.Now().Add(time.Hour)), secret)
	expired, _ := Sign(NewClaims("acme", "device1", time.Now().Add(-time.Hour)), secret)

	tests := []struct {
		name     string
		token    string
		audience string
		secret   []byte
	}{
		{"wrong audience", valid, "device2", secret},
		{"wrong secret", valid, "device1", []byte("other")},
		{"expired", expired, "device1", secret},
		{"garbage", "not.a.token", "device1", secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Verify(tt.token, tt.audience, tt.secret); !errors.Is(err, kerrors.ErrAuthenticationFailed) {
				t.Errorf("Expected ErrAuthenticationFailed, got: %v", err)
			}
		})
	}
}

func TestMissingSecret(t *testing.T) {
	if _, err := Sign(NewClaims("a", "b", time.Now()), nil); !errors.Is(err, kerrors.ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret from Sign, got: %v", err)
	}
	if _, err := Verify("x", "b", nil); !errors.Is(err, kerrors.ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret from Verify, got: %v", err)
	}
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1d0h0m", 24 * time.Hour},
		{"10d5h20m", 245*time.Hour + 20*time.Minute},
		{"0d0h1m", time.Minute},
	}
	for _, tt := range tests {
		got, err := ParseExpiry(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseExpiry(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []string{"", "1d", "1h0m", "xd1h1m", "1d1h1m extra"} {
		if _, err := ParseExpiry(bad); !errors.Is(err, kerrors.ErrInvalidExpiry) {
			t.Errorf("ParseExpiry(%q): expected ErrInvalidExpiry, got: %v", bad, err)
		}
	}
}
