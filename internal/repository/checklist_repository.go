package repository

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

// GormChecklistRepository is a GORM implementation of ChecklistRepository
type GormChecklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new ChecklistRepository
func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &GormChecklistRepository{db: db}
}

// Create inserts the checklist; gorm writes the Tasks links in the same transaction
func (r *GormChecklistRepository) Create(ctx context.Context, checklist *models.Checklist) error {
	return r.db.WithContext(ctx).Create(checklist).Error
}

func (r *GormChecklistRepository) FindByID(ctx context.Context, id string) (*models.Checklist, error) {
	var checklist models.Checklist
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("id = ?", id).
		First(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (r *GormChecklistRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Checklist, error) {
	return findByIDs[models.Checklist](r.db.WithContext(ctx).Preload("Tasks"), ids)
}

// List retrieves checklists ordered by name
func (r *GormChecklistRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Checklist, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Checklist{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var checklists []models.Checklist
	if err := query.
		Order("name ASC, id ASC").
		Scopes(database.Paginate(params)).
		Preload("Tasks").
		Find(&checklists).Error; err != nil {
		return nil, 0, err
	}
	return checklists, total, nil
}

func (r *GormChecklistRepository) NameExists(ctx context.Context, name, exceptID string) (bool, error) {
	return existsExcept(r.db.WithContext(ctx), &models.Checklist{}, "name", name, exceptID)
}

// Update saves the checklist columns and replaces its task list in a transaction
func (r *GormChecklistRepository) Update(ctx context.Context, checklist *models.Checklist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Save(checklist).Error; err != nil {
			return err
		}

		if err := tx.Where("checklist_id = ?", checklist.ID).Delete(&models.ChecklistTask{}).Error; err != nil {
			return err
		}

		if len(checklist.Tasks) == 0 {
			return nil
		}
		return tx.Create(&checklist.Tasks).Error
	})
}

// Delete removes a checklist and its task links in a transaction
func (r *GormChecklistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id = ?", id).Delete(&models.ChecklistTask{}).Error; err != nil {
			return err
		}

		return deleteByID(tx, &models.Checklist{}, id)
	})
}

// CountByTask counts checklists containing a task
func (r *GormChecklistRepository) CountByTask(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChecklistTask{}).
		Where("task_id = ?", taskID).
		Count(&count).Error
	return count, err
}
