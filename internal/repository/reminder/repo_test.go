package reminder

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/smartsched/reminder-scheduler/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateReminder(t *testing.T) {
	repo, mock := setupMockDB(t)

	reminderID := uuid.New()
	r := model.Reminder{
		Title:       "Dentist",
		Description: "Bring insurance card",
		DueAt:       time.Now().Add(24 * time.Hour),
		Location:    strPtr("Downtown clinic"),
		Latitude:    f64Ptr(33.424564),
		Longitude:   f64Ptr(-111.928100),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO reminders (
		    title, description, due_at, location, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `)).
		WithArgs(r.Title, r.Description, r.DueAt, r.Location, r.Latitude, r.Longitude).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(reminderID))

	id, err := repo.CreateReminder(context.Background(), r)
	assert.NoError(t, err)
	assert.Equal(t, reminderID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReminder(t *testing.T) {
	repo, mock := setupMockDB(t)

	r := model.Reminder{
		ID:          uuid.New(),
		Title:       "Dentist (rescheduled)",
		Description: "Bring insurance card",
		DueAt:       time.Now().Add(48 * time.Hour),
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE reminders
		SET title = $1, description = $2, due_at = $3, location = $4, latitude = $5, longitude = $6
		WHERE id = $7;
    `)).
		WithArgs(r.Title, r.Description, r.DueAt, r.Location, r.Latitude, r.Longitude, r.ID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpdateReminder(context.Background(), r)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE reminders
		SET title = $1, description = $2, due_at = $3, location = $4, latitude = $5, longitude = $6
		WHERE id = $7;
    `)).
		WithArgs(r.Title, r.Description, r.DueAt, r.Location, r.Latitude, r.Longitude, r.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateReminder(context.Background(), r)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReminder(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM reminders
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.DeleteReminder(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM reminders
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteReminder(context.Background(), id)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReminderByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	r := model.Reminder{
		ID:          uuid.New(),
		Title:       "Groceries",
		Description: "Milk, eggs",
		DueAt:       time.Now().Add(2 * time.Hour),
		Location:    strPtr("Market"),
		Latitude:    f64Ptr(33.4),
		Longitude:   f64Ptr(-111.9),
	}

	rows := sqlmock.NewRows([]string{"id", "title", "description", "due_at", "location", "latitude", "longitude"}).
		AddRow(r.ID, r.Title, r.Description, r.DueAt, r.Location, r.Latitude, r.Longitude)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		WHERE id = $1;
    `)).
		WithArgs(r.ID).
		WillReturnRows(rows)

	got, err := repo.GetReminderByID(context.Background(), r.ID)
	assert.NoError(t, err)
	assert.Equal(t, r.Title, got.Title)
	assert.Equal(t, r.Latitude, got.Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		WHERE id = $1;
    `)).
		WithArgs(r.ID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetReminderByID(context.Background(), r.ID)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllReminders(t *testing.T) {
	repo, mock := setupMockDB(t)

	r1 := model.Reminder{
		ID:          uuid.New(),
		Title:       "One",
		Description: "first",
		DueAt:       time.Now().Add(time.Hour),
	}
	r2 := model.Reminder{
		ID:          uuid.New(),
		Title:       "Two",
		Description: "second",
		DueAt:       time.Now().Add(2 * time.Hour),
		Location:    strPtr("Office"),
		Latitude:    f64Ptr(40.0),
		Longitude:   f64Ptr(-75.0),
	}

	rows := sqlmock.NewRows([]string{"id", "title", "description", "due_at", "location", "latitude", "longitude"}).
		AddRow(r1.ID, r1.Title, r1.Description, r1.DueAt, r1.Location, r1.Latitude, r1.Longitude).
		AddRow(r2.ID, r2.Title, r2.Description, r2.DueAt, r2.Location, r2.Latitude, r2.Longitude)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		ORDER BY due_at;
    `)).WillReturnRows(rows)

	list, err := repo.GetAllReminders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		ORDER BY due_at;
    `)).WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "due_at", "location", "latitude", "longitude"}))

	_, err = repo.GetAllReminders(context.Background())
	assert.ErrorIs(t, err, ErrNoRemindersFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
