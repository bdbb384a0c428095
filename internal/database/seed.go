package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/piyuclean-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPasswords are the initial credentials written by Seed.
const (
	SeedAdminPassword   = "admin123"
	SeedStudentPassword = "student123"
)

// Seed fills empty tables with demo data. Tables that already hold rows
// are left untouched, so running it twice is safe.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmins(tx); err != nil {
			return err
		}
		if err := seedStudents(tx); err != nil {
			return err
		}
		if err := seedClassrooms(tx); err != nil {
			return err
		}
		if err := seedTasks(tx); err != nil {
			return err
		}
		return seedChecklists(tx)
	})
}

func isEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hash), nil
}

func seedAdmins(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.AdminUser{})
	if err != nil || !empty {
		return err
	}

	hash, err := hashPassword(SeedAdminPassword)
	if err != nil {
		return err
	}
	admin := models.AdminUser{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "System Administrator",
		Role:         "Administrator",
		Status:       models.AccountStatusActive,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	log.Println("Seeded admin user")
	return nil
}

func seedStudents(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Student{})
	if err != nil || !empty {
		return err
	}

	hash, err := hashPassword(SeedStudentPassword)
	if err != nil {
		return err
	}
	students := []models.Student{
		{ID: "student-1", StudentCode: "student", FirstName: "Juan", LastName: "Dela Cruz", ClassSection: "BSIT 1A"},
		{ID: "student-2", StudentCode: "2024001", FirstName: "Maria", LastName: "Santos", ClassSection: "BSIT 1B"},
		{ID: "student-3", StudentCode: "2024002", FirstName: "John", LastName: "Smith", ClassSection: "BSIT 2A"},
		{ID: "student-4", StudentCode: "2024003", FirstName: "Ana", LastName: "Garcia", ClassSection: "BSIT 3A AMG"},
		{ID: "student-5", StudentCode: "2024004", FirstName: "Carlos", LastName: "Lopez", ClassSection: "BSIT 4D NETAD"},
	}
	for i := range students {
		students[i].PasswordHash = hash
		students[i].Status = models.AccountStatusActive
	}
	if err := tx.Create(&students).Error; err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}
	log.Printf("Seeded %d students", len(students))
	return nil
}

func seedClassrooms(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Classroom{})
	if err != nil || !empty {
		return err
	}

	classrooms := []models.Classroom{
		{ID: "classroom-1", ClassroomCode: "ROOM-101", Name: "Computer Lab 1", Description: "Main computer laboratory"},
		{ID: "classroom-2", ClassroomCode: "ROOM-102", Name: "Computer Lab 2", Description: "Secondary computer laboratory"},
		{ID: "classroom-3", ClassroomCode: "ROOM-201", Name: "Lecture Hall A", Description: "Large lecture hall for presentations"},
	}
	if err := tx.Create(&classrooms).Error; err != nil {
		return fmt.Errorf("failed to seed classrooms: %w", err)
	}
	log.Printf("Seeded %d classrooms", len(classrooms))
	return nil
}

func seedTasks(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.CleaningTask{})
	if err != nil || !empty {
		return err
	}

	tasks := []models.CleaningTask{
		{ID: "task-1", Name: "Sweep the floor", Description: "Clean and sweep the entire floor area"},
		{ID: "task-2", Name: "Arrange chairs", Description: "Organize chairs in proper rows"},
		{ID: "task-3", Name: "Clean whiteboard", Description: "Wipe and clean the whiteboard"},
		{ID: "task-4", Name: "Empty trash bins", Description: "Remove and replace trash bag liners"},
	}
	if err := tx.Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to seed cleaning tasks: %w", err)
	}
	log.Printf("Seeded %d cleaning tasks", len(tasks))
	return nil
}

func seedChecklists(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Checklist{})
	if err != nil || !empty {
		return err
	}

	daily := models.Checklist{ID: "checklist-1", Name: "Daily Classroom Cleaning", Description: "Basic daily cleaning tasks for classrooms"}
	daily.SetTasks([]string{"task-1", "task-2", "task-3"})
	weekly := models.Checklist{ID: "checklist-2", Name: "Weekly Deep Clean", Description: "Comprehensive weekly cleaning tasks"}
	weekly.SetTasks([]string{"task-1", "task-2", "task-3", "task-4"})

	for _, cl := range []*models.Checklist{&daily, &weekly} {
		if err := tx.Create(cl).Error; err != nil {
			return fmt.Errorf("failed to seed checklist %s: %w", cl.Name, err)
		}
	}
	log.Println("Seeded 2 checklists")
	return nil
}
