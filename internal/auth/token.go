package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TokenKind tags a token as usable for API access or for refreshing a pair.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

type Claims struct {
	Type  string `json:"type"`
	Email string `json:"user_email"`
	Exp   int64  `json:"exp"`
}

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("expired token")
	ErrWrongTokenType = errors.New("wrong token type")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Tokens issues and validates signed, expiring access/refresh token pairs.
// Validity is signature plus expiry plus kind; there is no revocation list,
// so a refresh token stays usable until its own expiry.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokens(secret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Issue generates an access/refresh pair for the given subject email.
func (t *Tokens) Issue(email string) (TokenPair, error) {
	now := t.now()
	access, err := t.encode(Claims{
		Type:  string(TokenAccess),
		Email: email,
		Exp:   now.Add(t.accessTTL).Unix(),
	})
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.encode(Claims{
		Type:  string(TokenRefresh),
		Email: email,
		Exp:   now.Add(t.refreshTTL).Unix(),
	})
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Validate checks signature, expiry and kind, and returns the subject email.
func (t *Tokens) Validate(token string, kind TokenKind) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return "", ErrMalformedToken
	}
	payload := parts[0]
	signature := parts[1]

	expected := t.sign(payload)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", ErrMalformedToken
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrMalformedToken
	}

	var claims Claims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return "", ErrMalformedToken
	}
	if claims.Email == "" || claims.Type == "" || claims.Exp == 0 {
		return "", ErrMalformedToken
	}
	if t.now().Unix() >= claims.Exp {
		return "", ErrExpiredToken
	}
	if claims.Type != string(kind) {
		return "", ErrWrongTokenType
	}
	return claims.Email, nil
}

func (t *Tokens) encode(claims Claims) (string, error) {
	payloadBytes, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(payloadBytes)
	return payload + "." + t.sign(payload), nil
}

func (t *Tokens) sign(payload string) string {
	sum := hmac.New(sha256.New, t.secret)
	_, _ = sum.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(sum.Sum(nil))
}
