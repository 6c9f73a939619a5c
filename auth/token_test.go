package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestIssueAndDecode_Success(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	claims := &Claims{
		Email:         "a@x.com",
		Name:          "Alice",
		Picture:       "https://example.com/a.png",
		ContactNumber: "555-0100",
	}

	tok, err := IssueToken(claims, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	got, err := DecodeToken(tok)
	if err != nil {
		t.Fatalf("DecodeToken error: %v", err)
	}
	if *got != *claims {
		t.Fatalf("claims mismatch: got %+v want %+v", got, claims)
	}
}

func TestDecodeToken_Expired(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	tok, err := IssueToken(&Claims{Email: "a@x.com"}, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = DecodeToken(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecodeToken_WrongSecret(t *testing.T) {
	viper.Set("jwt.secret", "right-secret")

	tok, err := IssueToken(&Claims{Email: "a@x.com"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	viper.Set("jwt.secret", "wrong-secret")

	_, err = DecodeToken(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestDecodeToken_MalformedString(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	_, err := DecodeToken("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestDecodeToken_MissingEmail(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	tok, err := IssueToken(&Claims{}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = DecodeToken(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty email claim, got %v", err)
	}
}
