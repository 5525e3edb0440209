package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/labtrack/labtrack-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, exp, err := tm.GenerateToken("user-1", domain.RoleEngineer)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expiry %v not about one hour away", d)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleEngineer {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	valid, _, err := tm.GenerateToken("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.GenerateToken("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1", Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		tm    *TokenManager
	}{
		{"wrong secret", valid, NewTokenManager("other", time.Hour)},
		{"expired", expiredToken, tm},
		{"malformed", "not-a-jwt", tm},
		{"alg none", unsigned, tm},
		{"empty", "", tm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.tm.ParseToken(tt.token); err == nil {
				t.Error("expected ParseToken to fail")
			}
		})
	}
}

func TestNewTokenManagerDefaultsTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	if tm.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", tm.ttl)
	}
}
