package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
	pkgAuth "github.com/muktarbdulkader/campus-connector/internal/pkg/auth"
)

// AuthService defines the interface for identity operations
type AuthService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID string) (*models.Profile, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store      repositories.RecordStore
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store repositories.RecordStore, jwtService *pkgAuth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a credential record and an initial profile. The credential
// is keyed by normalized email, so the conditional insert doubles as the
// duplicate-email check even under concurrent signups.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.NewString()
	credential := models.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.store.CompareAndSwap(ctx, models.PrefixCredential+email, credential, 0)
	if err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}
	if !created {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	profile := models.Profile{
		ID:         userID,
		Email:      email,
		FullName:   req.FullName,
		University: req.University,
		Department: req.Department,
		Year:       req.Year,
		Skills:     req.Skills,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Set(ctx, models.PrefixUser+userID, profile); err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	s.logger.Info().Str("userId", userID).Msg("User created")

	return &dto.SignupResponse{
		Message: "User created successfully. Please log in.",
		UserID:  userID,
	}, nil
}

// Login verifies credentials and issues an access token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	credential, _, err := repositories.GetRecord[models.Credential](ctx, s.store, models.PrefixCredential+email)
	if err != nil {
		return nil, err
	}
	if credential == nil || !pkgAuth.CheckPassword(credential.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(credential.UserID, credential.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	profile, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+credential.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// A credential without a profile should not happen, but logging in
		// still works; the client gets the minimal identity.
		profile = &models.Profile{ID: credential.UserID, Email: credential.Email}
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        profile,
	}, nil
}

// Me returns the caller's profile.
func (s *authServiceImpl) Me(ctx context.Context, userID string) (*models.Profile, error) {
	profile, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}
