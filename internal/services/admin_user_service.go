package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrLastActiveAdmin = errors.New("at least one active admin user must remain")
)

// AdminUserService manages admin accounts.
type AdminUserService struct {
	adminRepo repository.AdminUserRepository
}

// NewAdminUserService creates a new AdminUserService.
func NewAdminUserService(adminRepo repository.AdminUserRepository) *AdminUserService {
	return &AdminUserService{
		adminRepo: adminRepo,
	}
}

// AdminUserInput represents input for creating an admin user
type AdminUserInput struct {
	ID       string
	Username string
	Password string
	FullName string
	Role     string
	Status   models.AccountStatus
}

// UpdateAdminUserInput represents a partial admin user update
type UpdateAdminUserInput struct {
	Username *string
	Password *string
	FullName *string
	Role     *string
	Status   *models.AccountStatus
}

func (s *AdminUserService) ListAdminUsers(ctx context.Context, params utils.PaginationParams) ([]models.AdminUser, int64, error) {
	users, total, err := s.adminRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admin users: %w", err)
	}
	return users, total, nil
}

func (s *AdminUserService) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	user, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}
	return user, nil
}

func (s *AdminUserService) CreateAdminUser(ctx context.Context, input AdminUserInput) (*models.AdminUser, error) {
	status, err := accountStatusOrDefault(input.Status)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		ID:       strings.TrimSpace(input.ID),
		Username: strings.TrimSpace(input.Username),
		FullName: strings.TrimSpace(input.FullName),
		Role:     strings.TrimSpace(input.Role),
		Status:   status,
	}
	if user.Username == "" || user.FullName == "" || user.Role == "" || input.Password == "" {
		return nil, ErrMissingField
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.adminRepo.FindByUsername(ctx, user.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if user.PasswordHash, err = hashPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.adminRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return user, nil
}

func (s *AdminUserService) UpdateAdminUser(ctx context.Context, id string, input UpdateAdminUserInput) (*models.AdminUser, error) {
	user, err := s.GetAdminUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTrimmed(&user.FullName, input.FullName); err != nil {
		return nil, err
	}
	if err := applyTrimmed(&user.Role, input.Role); err != nil {
		return nil, err
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, ErrMissingField
		}
		if username != user.Username {
			if _, err := s.adminRepo.FindByUsername(ctx, username); err == nil {
				return nil, ErrUsernameTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check username: %w", err)
			}
			user.Username = username
		}
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidAccountStatus
		}
		if *input.Status != models.AccountStatusActive {
			if err := s.ensureAnotherActiveAdmin(ctx, user); err != nil {
				return nil, err
			}
		}
		user.Status = *input.Status
	}
	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		if user.PasswordHash, err = hashPassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.adminRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to update admin user: %w", err)
	}
	return user, nil
}

// DeleteAdminUser removes an admin user unless it is the last active one
func (s *AdminUserService) DeleteAdminUser(ctx context.Context, id string) error {
	user, err := s.GetAdminUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureAnotherActiveAdmin(ctx, user); err != nil {
		return err
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete admin user: %w", err)
	}
	return nil
}

func (s *AdminUserService) ensureAnotherActiveAdmin(ctx context.Context, user *models.AdminUser) error {
	if user.Status != models.AccountStatusActive {
		return nil
	}
	count, err := s.adminRepo.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active admin users: %w", err)
	}
	if count <= 1 {
		return ErrLastActiveAdmin
	}
	return nil
}
