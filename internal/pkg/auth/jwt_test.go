package auth

import (
	"errors"
	"testing"
	"time"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("user-123", "u@campus.test")
	if err != nil {
		t.Fatal(err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-123" || claims.Email != "u@campus.test" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsForeignToken(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateAccessToken("user-123", "u@campus.test")
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Error("token signed with another key validated")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateAccessToken("user-123", "u@campus.test")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateAndExtractClaims(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatal(err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}

	if _, err := ExtractBearerToken("abc.def.ghi"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing prefix: got %v, want ErrInvalidFormat", err)
	}
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header: got %v, want ErrInvalidFormat", err)
	}
}
