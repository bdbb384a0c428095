package repository

import (
	"gorm.io/gorm"
)

// findByIDs loads the rows whose primary key is in ids. Missing ids are
// simply absent from the result.
func findByIDs[T any](db *gorm.DB, ids []string) ([]T, error) {
	items := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// deleteByID deletes one row and reports gorm.ErrRecordNotFound when
// nothing matched.
func deleteByID(db *gorm.DB, model interface{}, id string) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// existsExcept reports whether a row other than exceptID has column = value.
func existsExcept(db *gorm.DB, model interface{}, column, value, exceptID string) (bool, error) {
	query := db.Model(model).Where(column+" = ?", value)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
