package repository

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

// GormAdminUserRepository is a GORM implementation of AdminUserRepository
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// Create creates a new admin user
func (r *GormAdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds an admin user by ID
func (r *GormAdminUserRepository) FindByID(ctx context.Context, id string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds an admin user by username
func (r *GormAdminUserRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves admin users ordered by username
func (r *GormAdminUserRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.AdminUser, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdminUser{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.AdminUser
	if err := query.Order("username ASC").Scopes(database.Paginate(params)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update updates an admin user
func (r *GormAdminUserRepository) Update(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete deletes an admin user
func (r *GormAdminUserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(r.db.WithContext(ctx), &models.AdminUser{}, id)
}

// CountActive counts admin users that may log in
func (r *GormAdminUserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).
		Where("status = ?", models.AccountStatusActive).
		Count(&count).Error
	return count, err
}
