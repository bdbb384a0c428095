package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUpdateStatus_GuardsOnVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec("UPDATE `assignments` SET .* WHERE id = \\? AND version = \\?").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(4), "a-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &models.Assignment{ID: "a-1", Status: models.AssignmentStatusPending}
	require.NoError(t, repo.UpdateStatus(context.Background(), a, 3))
	assert.Equal(t, int64(4), a.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_StaleVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec("UPDATE `assignments` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `assignments` WHERE id = \\?").
		WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	a := &models.Assignment{ID: "a-1", Status: models.AssignmentStatusPending}
	err := repo.UpdateStatus(context.Background(), a, 3)
	assert.True(t, errors.Is(err, ErrStaleVersion))
	assert.Equal(t, int64(0), a.Version, "version is untouched on conflict")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectExec("UPDATE `assignments` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `assignments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.UpdateStatus(context.Background(), &models.Assignment{ID: "gone"}, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
