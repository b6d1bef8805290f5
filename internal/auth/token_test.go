package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	token, err := IssueToken("s3cret", "ops", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := ParseToken("s3cret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "ops" || claims.Role != RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseRejects(t *testing.T) {
	valid, err := IssueToken("s3cret", "ops", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := IssueToken("s3cret", "ops", RoleAdmin, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, secret, token string
	}{
		{"wrong secret", "other", valid},
		{"expired", "s3cret", expired},
		{"garbage", "s3cret", "not.a.token"},
		{"empty", "s3cret", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.secret, tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestIssueRequiresSecret(t *testing.T) {
	if _, err := IssueToken("", "ops", RoleAdmin, time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
}
