package repository

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

// GormCleaningTaskRepository is a GORM implementation of CleaningTaskRepository
type GormCleaningTaskRepository struct {
	db *gorm.DB
}

// NewCleaningTaskRepository creates a new CleaningTaskRepository
func NewCleaningTaskRepository(db *gorm.DB) CleaningTaskRepository {
	return &GormCleaningTaskRepository{db: db}
}

func (r *GormCleaningTaskRepository) Create(ctx context.Context, task *models.CleaningTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *GormCleaningTaskRepository) FindByID(ctx context.Context, id string) (*models.CleaningTask, error) {
	var task models.CleaningTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormCleaningTaskRepository) FindByIDs(ctx context.Context, ids []string) ([]models.CleaningTask, error) {
	return findByIDs[models.CleaningTask](r.db.WithContext(ctx), ids)
}

// List retrieves cleaning tasks ordered by name
func (r *GormCleaningTaskRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.CleaningTask, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CleaningTask{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.CleaningTask
	if err := query.Order("name ASC, id ASC").Scopes(database.Paginate(params)).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *GormCleaningTaskRepository) NameExists(ctx context.Context, name, exceptID string) (bool, error) {
	return existsExcept(r.db.WithContext(ctx), &models.CleaningTask{}, "name", name, exceptID)
}

func (r *GormCleaningTaskRepository) Update(ctx context.Context, task *models.CleaningTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *GormCleaningTaskRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(r.db.WithContext(ctx), &models.CleaningTask{}, id)
}
