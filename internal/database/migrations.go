package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/piyuclean-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every table in migration order.
var Models = []interface{}{
	&models.AdminUser{},
	&models.Student{},
	&models.Classroom{},
	&models.CleaningTask{},
	&models.Checklist{},
	&models.ChecklistTask{},
	&models.Assignment{},
	&models.AssignmentStudent{},
}

// Migrate creates or updates the schema and the composite indexes.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db); err != nil {
		return err
	}
	log.Println("Database migrations completed")
	return nil
}

// AddIndexes adds the indexes that struct tags cannot express.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Reports filter by date and bucket by status.
		{"assignments", "idx_assignments_date_status", "date, status"},
		// Student view looks up assignments per student.
		{"assignment_students", "idx_assignment_students_student_assignment", "student_id, assignment_id"},
		{"checklist_tasks", "idx_checklist_tasks_checklist_position", "checklist_id, position"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
