package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
	pkgAuth "github.com/muktarbdulkader/campus-connector/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (AuthService, repositories.RecordStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop()), store
}

func TestRegisterCreatesCredentialAndProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newAuthFixture(t)

	resp, err := svc.Register(ctx, &dto.SignupRequest{
		Email:      "Jane@Campus.Test",
		Password:   "secret-pass",
		FullName:   "Jane Doe",
		University: "Alpha University",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.UserID == "" {
		t.Fatal("empty user id")
	}

	// Email is normalized for the credential key.
	credential, _, err := repositories.GetRecord[models.Credential](ctx, store, models.PrefixCredential+"jane@campus.test")
	if err != nil {
		t.Fatal(err)
	}
	if credential == nil {
		t.Fatal("credential not stored under normalized email")
	}
	if credential.PasswordHash == "secret-pass" {
		t.Error("password stored in plaintext")
	}

	profile, _, err := repositories.GetRecord[models.Profile](ctx, store, models.PrefixUser+resp.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.FullName != "Jane Doe" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	req := &dto.SignupRequest{Email: "dup@campus.test", Password: "secret-pass", FullName: "First"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatal(err)
	}

	// Same address with different casing still collides.
	_, err := svc.Register(ctx, &dto.SignupRequest{Email: "DUP@campus.test", Password: "other-pass", FullName: "Second"})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("got %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	reg, err := svc.Register(ctx, &dto.SignupRequest{Email: "login@campus.test", Password: "secret-pass", FullName: "Login User"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "login@campus.test", Password: "secret-pass"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken == "" {
		t.Error("empty access token")
	}
	if resp.User == nil || resp.User.ID != reg.UserID {
		t.Errorf("login user = %+v, want id %s", resp.User, reg.UserID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	if _, err := svc.Register(ctx, &dto.SignupRequest{Email: "u@campus.test", Password: "secret-pass", FullName: "U"}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "u@campus.test", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@campus.test", Password: "secret-pass"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestMeRequiresExistingProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	if _, err := svc.Me(ctx, "ghost"); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("got %v, want ErrProfileNotFound", err)
	}
}
