package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signedToken builds an HMAC-signed token for tests. The key does not matter
// because the parsers under test never verify signatures.
func signedToken(t *testing.T, userID int64, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"padded header", "  Bearer abc.def.ghi  ", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUserIDFromJWT_Success(t *testing.T) {
	token := signedToken(t, 456, time.Hour)

	userID, err := ParseUserIDFromJWT(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != 456 {
		t.Errorf("expected userID 456, got %d", userID)
	}
}

func TestParseUserIDFromJWT_Malformed(t *testing.T) {
	_, err := ParseUserIDFromJWT("not.a.token")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseUserIDFromJWT_NonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}

	if _, err = ParseUserIDFromJWT(token); err == nil {
		t.Error("expected error for non-numeric subject, got nil")
	}
}

func TestTokenExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"fresh token", signedToken(t, 1, time.Hour), false},
		{"expired token", signedToken(t, 1, -time.Second), true},
		{"expiring within skew", signedToken(t, 1, 30*time.Second), true},
		{"malformed token", "not.a.token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenExpired(tt.token); got != tt.want {
				t.Errorf("expected TokenExpired=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).
		SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}

	if !TokenExpired(token) {
		t.Error("expected token without exp claim to be treated as expired")
	}
}
