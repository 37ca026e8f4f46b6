package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/smartsched/reminder-scheduler/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrNoRemindersFound = errors.New("no reminders found")
)

// Repository provides methods to interact with the reminders table. It is
// the sole durable owner of reminder state; the scheduling core re-reads it
// on every pass instead of caching.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new reminder and returns its assigned ID.
func (r *Repository) CreateReminder(ctx context.Context, reminder model.Reminder) (uuid.UUID, error) {
	query := `
		INSERT INTO reminders (
		    title, description, due_at, location, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		reminder.Title, reminder.Description, reminder.DueAt,
		reminder.Location, reminder.Latitude, reminder.Longitude,
	).Scan(&reminder.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder.ID, nil
}

// UpdateReminder overwrites mutable fields of the reminder by its ID.
func (r *Repository) UpdateReminder(ctx context.Context, reminder model.Reminder) error {
	query := `
		UPDATE reminders
		SET title = $1, description = $2, due_at = $3, location = $4, latitude = $5, longitude = $6
		WHERE id = $7;
    `

	res, err := r.db.ExecContext(
		ctx, query,
		reminder.Title, reminder.Description, reminder.DueAt,
		reminder.Location, reminder.Latitude, reminder.Longitude,
		reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes the reminder by its ID.
func (r *Repository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM reminders
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// GetReminderByID retrieves a single reminder by its ID.
func (r *Repository) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := `
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		WHERE id = $1;
    `

	var reminder model.Reminder
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reminder.ID, &reminder.Title, &reminder.Description, &reminder.DueAt,
		&reminder.Location, &reminder.Latitude, &reminder.Longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

// GetAllReminders retrieves all reminders ordered by due time. An empty
// table is reported as ErrNoRemindersFound, distinct from a query failure.
func (r *Repository) GetAllReminders(ctx context.Context) ([]model.Reminder, error) {
	query := `
		SELECT id, title, description, due_at, location, latitude, longitude
		FROM reminders
		ORDER BY due_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var reminder model.Reminder
		if err := rows.Scan(
			&reminder.ID, &reminder.Title, &reminder.Description, &reminder.DueAt,
			&reminder.Location, &reminder.Latitude, &reminder.Longitude,
		); err != nil {
			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	if len(reminders) == 0 {
		return nil, ErrNoRemindersFound
	}

	return reminders, nil
}
