package repository

import (
	"context"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create inserts the assignment; gorm writes the Students links in the same transaction
func (r *GormAssignmentRepository) Create(ctx context.Context, a *models.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByID finds an assignment by ID with its students loaded
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	var a models.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Students").
		Where("id = ?", id).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List retrieves assignments with filtering and pagination
func (r *GormAssignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, int64, error) {
	db := r.db.WithContext(ctx)
	query := db.Model(&models.Assignment{})

	if filter.Date != nil {
		query = query.Where("assignments.date = ?", *filter.Date)
	}
	if filter.From != nil {
		query = query.Where("assignments.date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("assignments.date <= ?", *filter.To)
	}
	if filter.ClassroomID != nil {
		query = query.Where("assignments.classroom_id = ?", *filter.ClassroomID)
	}
	if filter.Status != nil {
		query = query.Where("assignments.status = ?", *filter.Status)
	}
	if filter.StudentID != nil {
		studentSubQuery := db.Model(&models.AssignmentStudent{}).
			Select("1").
			Where("assignment_students.assignment_id = assignments.id").
			Where("assignment_students.student_id = ?", *filter.StudentID)
		query = query.Where("EXISTS (?)", studentSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []models.Assignment
	if err := query.
		Order("assignments.date DESC, assignments.created_at ASC, assignments.id ASC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Students").
		Find(&assignments).Error; err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// UpdateStatus performs an optimistic update guarded by expectedVersion.
// On success a.Version holds the new version.
func (r *GormAssignmentRepository) UpdateStatus(ctx context.Context, a *models.Assignment, expectedVersion int64) error {
	db := r.db.WithContext(ctx)
	now := time.Now()

	result := db.Model(&models.Assignment{}).
		Where("id = ? AND version = ?", a.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":       a.Status,
			"completed_at": a.CompletedAt,
			"comments":     a.Comments,
			"version":      expectedVersion + 1,
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Assignment{}).Where("id = ?", a.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrStaleVersion
	}

	a.Version = expectedVersion + 1
	a.UpdatedAt = now
	return nil
}

// Delete removes an assignment and its student links in a transaction
func (r *GormAssignmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&models.AssignmentStudent{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Assignment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListOverdueCandidates lists assigned or pending assignments dated before the given day
func (r *GormAssignmentRepository) ListOverdueCandidates(ctx context.Context, before models.Date) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("date < ?", before).
		Where("status IN ?", []models.AssignmentStatus{
			models.AssignmentStatusAssigned,
			models.AssignmentStatusPending,
		}).
		Order("date ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}

// CountByClassroom counts assignments in a classroom
func (r *GormAssignmentRepository) CountByClassroom(ctx context.Context, classroomID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("classroom_id = ?", classroomID).
		Count(&count).Error
	return count, err
}

// CountByChecklist counts assignments using a checklist
func (r *GormAssignmentRepository) CountByChecklist(ctx context.Context, checklistID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("checklist_id = ?", checklistID).
		Count(&count).Error
	return count, err
}

// CountByStudent counts assignments a student belongs to
func (r *GormAssignmentRepository) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AssignmentStudent{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
