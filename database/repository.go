package database

import (
	"context"
	"database/sql"
	"exercise-tracker/models"
	"time"

	"github.com/google/uuid"
)

// Repository implements user and exercise storage on SQLite
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Close releases the underlying database
func (r *Repository) Close(ctx context.Context) error {
	return r.db.Close()
}

// Ping reports whether the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ==================== USERS ====================

func (r *Repository) CreateUser(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{
		ID:       uuid.New().String(),
		Username: username,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)
	`, user.ID, user.Username, time.Now())
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username FROM users WHERE id = ?
	`, userID).Scan(&user.ID, &user.Username)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns users in insertion order
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username FROM users ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// ==================== EXERCISES ====================

func (r *Repository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	id := uuid.New().String()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES (?, ?, ?, ?, ?)
	`,
		id, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date.UnixMilli(),
	)
	if err != nil {
		return err
	}

	exercise.ID = id
	exercise.Date = time.UnixMilli(exercise.Date.UnixMilli()).UTC()
	return nil
}

// FindExercises returns a user's exercises in insertion order, bounded
// by the filter's inclusive date range and limit.
func (r *Repository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	query, args := buildLogQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var e models.Exercise
		var dateMillis int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &dateMillis); err != nil {
			return nil, err
		}
		e.Date = time.UnixMilli(dateMillis).UTC()
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

func buildLogQuery(filter models.LogFilter) (string, []interface{}) {
	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = ?`
	args := []interface{}{filter.UserID}

	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, filter.From.UnixMilli())
	}
	if filter.To != nil {
		query += ` AND date <= ?`
		args = append(args, filter.To.UnixMilli())
	}

	query += ` ORDER BY rowid`

	// SQLite treats a negative LIMIT as unbounded
	limit := -1
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	return query, args
}
