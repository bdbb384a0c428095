package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrStudentCodeTaken     = errors.New("student ID already exists")
	ErrMissingField         = errors.New("missing required field")
)

// AuthService handles authentication for admins and students.
type AuthService struct {
	adminRepo   repository.AdminUserRepository
	studentRepo repository.StudentRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminUserRepository, studentRepo repository.StudentRepository) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		studentRepo: studentRepo,
	}
}

// LoginInput holds admin credentials.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies admin credentials and records the login time.
// Inactive admins are rejected like unknown ones.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.AdminUser, error) {
	user, err := s.adminRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	if user.Status != models.AccountStatusActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.adminRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return user, nil
}

// StudentLoginInput holds student credentials.
type StudentLoginInput struct {
	StudentCode string
	Password    string
}

// StudentLogin verifies a student's code and password.
func (s *AuthService) StudentLogin(ctx context.Context, input StudentLoginInput) (*models.Student, error) {
	student, err := s.studentRepo.FindByCode(ctx, strings.TrimSpace(input.StudentCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	if student.Status != models.AccountStatusActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return student, nil
}

// RegisterStudentInput is a student's self-registration form.
type RegisterStudentInput struct {
	StudentCode  string
	FirstName    string
	LastName     string
	ClassSection string
	Password     string
}

// RegisterStudent creates an active student account.
func (s *AuthService) RegisterStudent(ctx context.Context, input RegisterStudentInput) (*models.Student, error) {
	student := &models.Student{
		StudentCode:  strings.TrimSpace(input.StudentCode),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		ClassSection: strings.TrimSpace(input.ClassSection),
		Status:       models.AccountStatusActive,
	}
	if student.StudentCode == "" || student.FirstName == "" || student.LastName == "" || student.ClassSection == "" {
		return nil, ErrMissingField
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.studentRepo.FindByCode(ctx, student.StudentCode); err == nil {
		return nil, ErrStudentCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check student ID: %w", err)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	student.PasswordHash = hash

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentCodeTaken
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return student, nil
}

// GetAdmin retrieves an admin user by ID.
func (s *AuthService) GetAdmin(ctx context.Context, id string) (*models.AdminUser, error) {
	user, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}
	return user, nil
}

// GetStudent retrieves a student by ID.
func (s *AuthService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return student, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hashed), nil
}
