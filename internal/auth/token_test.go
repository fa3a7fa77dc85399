package auth

import (
	"strings"
	"testing"
	"time"
)

func newTestTokens() *Tokens {
	return NewTokens("secret", time.Hour, 24*time.Hour)
}

func TestIssueAndValidate(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.Issue("user@mail.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	email, err := tokens.Validate(pair.AccessToken, TokenAccess)
	if err != nil {
		t.Fatalf("Validate(access) error = %v", err)
	}
	if email != "user@mail.com" {
		t.Fatalf("unexpected subject: %q", email)
	}

	email, err = tokens.Validate(pair.RefreshToken, TokenRefresh)
	if err != nil {
		t.Fatalf("Validate(refresh) error = %v", err)
	}
	if email != "user@mail.com" {
		t.Fatalf("unexpected subject: %q", email)
	}
}

func TestValidateRejectsWrongKind(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.Issue("user@mail.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := tokens.Validate(pair.RefreshToken, TokenAccess); err != ErrWrongTokenType {
		t.Fatalf("Validate(refresh as access) error = %v, want ErrWrongTokenType", err)
	}
	if _, err := tokens.Validate(pair.AccessToken, TokenRefresh); err != ErrWrongTokenType {
		t.Fatalf("Validate(access as refresh) error = %v, want ErrWrongTokenType", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	tokens := newTestTokens()
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	pair, err := tokens.Issue("user@mail.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.Validate(pair.AccessToken, TokenAccess); err != ErrExpiredToken {
		t.Fatalf("Validate(expired) error = %v, want ErrExpiredToken", err)
	}
	// The refresh token outlives the access token.
	if _, err := tokens.Validate(pair.RefreshToken, TokenRefresh); err != nil {
		t.Fatalf("Validate(refresh) error = %v", err)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.Issue("user@mail.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no signature", token: strings.Split(pair.AccessToken, ".")[0]},
		{name: "tampered payload", token: "x" + pair.AccessToken},
		{name: "tampered signature", token: pair.AccessToken[:len(pair.AccessToken)-2]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tokens.Validate(tc.token, TokenAccess); err != ErrMalformedToken {
				t.Fatalf("Validate(%q) error = %v, want ErrMalformedToken", tc.token, err)
			}
		})
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	pair, err := newTestTokens().Issue("user@mail.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	other := NewTokens("another-secret", time.Hour, 24*time.Hour)
	if _, err := other.Validate(pair.AccessToken, TokenAccess); err != ErrMalformedToken {
		t.Fatalf("Validate() error = %v, want ErrMalformedToken", err)
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	first := HashPassword("secret", "password", "user@mail.com")
	second := HashPassword("secret", "password", "user@mail.com")
	if first != second {
		t.Fatalf("HashPassword() not deterministic: %q != %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("HashPassword() length = %d, want 64 hex chars", len(first))
	}

	if HashPassword("secret", "other", "user@mail.com") == first {
		t.Fatal("HashPassword() ignored password change")
	}
	if HashPassword("secret", "password", "other@mail.com") == first {
		t.Fatal("HashPassword() ignored email change")
	}
	if HashPassword("other", "password", "user@mail.com") == first {
		t.Fatal("HashPassword() ignored secret change")
	}
}
