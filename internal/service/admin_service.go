package service

import (
	"context"
	"fmt"

	"clinic-cms/internal/auth"
	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"
	"clinic-cms/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	adminRepo repository.Repository[model.Admin]
	tokens    TokenIssuer
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(adminRepo repository.Repository[model.Admin], tokens TokenIssuer, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// Register creates a new admin. The email check and insert are not atomic;
// concurrent registrations of one address can both succeed.
func (s *adminService) Register(ctx context.Context, req *model.AdminRegistration) (*model.AuthResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	email := *req.Email

	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn().Str("email", email).Msg("admin already exists")
		return nil, model.ErrAdminExists
	}

	hash, err := auth.HashPassword(*req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         *req.Name,
		CreatedAt:    model.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		s.logger.Error().Err(err).Str("email", admin.Email).Msg("failed to create admin")
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}

	s.logger.Info().Str("admin_id", admin.ID).Str("email", admin.Email).Msg("admin registered")

	return s.authResponse(admin)
}

// Login verifies credentials and returns a fresh token. Unknown emails and
// wrong passwords fail identically.
func (s *adminService) Login(ctx context.Context, req *model.AdminLogin) (*model.AuthResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	email := *req.Email

	admin, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !auth.CheckPassword(*req.Password, admin.PasswordHash) {
		s.logger.Warn().Str("email", email).Msg("invalid login attempt")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Str("admin_id", admin.ID).Msg("admin logged in")

	return s.authResponse(admin)
}

func (s *adminService) findByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin, err := s.adminRepo.FindOne(ctx, docstore.Filter{"email": email})
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up admin")
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

func (s *adminService) authResponse(admin *model.Admin) (*model.AuthResponse, error) {
	token, err := s.tokens.Issue(admin.Email, admin.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("admin_id", admin.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.AuthResponse{
		Token: token,
		Admin: admin.View(),
	}, nil
}
