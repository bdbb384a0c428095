package repository

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

// GormClassroomRepository is a GORM implementation of ClassroomRepository
type GormClassroomRepository struct {
	db *gorm.DB
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *gorm.DB) ClassroomRepository {
	return &GormClassroomRepository{db: db}
}

func (r *GormClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	return r.db.WithContext(ctx).Create(classroom).Error
}

func (r *GormClassroomRepository) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&classroom).Error; err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *GormClassroomRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Classroom, error) {
	return findByIDs[models.Classroom](r.db.WithContext(ctx), ids)
}

// List retrieves classrooms ordered by name
func (r *GormClassroomRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Classroom, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Classroom{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var classrooms []models.Classroom
	if err := query.Order("name ASC, id ASC").Scopes(database.Paginate(params)).Find(&classrooms).Error; err != nil {
		return nil, 0, err
	}
	return classrooms, total, nil
}

func (r *GormClassroomRepository) CodeExists(ctx context.Context, code, exceptID string) (bool, error) {
	return existsExcept(r.db.WithContext(ctx), &models.Classroom{}, "classroom_code", code, exceptID)
}

func (r *GormClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	return r.db.WithContext(ctx).Save(classroom).Error
}

func (r *GormClassroomRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(r.db.WithContext(ctx), &models.Classroom{}, id)
}
