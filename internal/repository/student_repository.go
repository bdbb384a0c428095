package repository

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"gorm.io/gorm"
)

// GormStudentRepository is a GORM implementation of StudentRepository
type GormStudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &GormStudentRepository{db: db}
}

func (r *GormStudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *GormStudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByCode finds a student by the login code printed on their ID card
func (r *GormStudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("student_code = ?", code).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *GormStudentRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Student, error) {
	return findByIDs[models.Student](r.db.WithContext(ctx), ids)
}

// List retrieves students ordered by last name, then first name
func (r *GormStudentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ClassSection != "" {
		query = query.Where("class_section = ?", filter.ClassSection)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []models.Student
	if err := query.
		Order("last_name ASC, first_name ASC, student_code ASC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *GormStudentRepository) ListActiveIDs(ctx context.Context, classSection string) ([]string, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("status = ?", models.AccountStatusActive)
	if classSection != "" {
		query = query.Where("class_section = ?", classSection)
	}

	var ids []string
	if err := query.Order("student_code ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormStudentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *GormStudentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(r.db.WithContext(ctx), &models.Student{}, id)
}
