package user

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles user data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts a user or updates name/gender when the external id already exists
func (r *Repository) Upsert(ctx context.Context, externalID, name, gender string, isReal bool) (*User, error) {
	query := `
		INSERT INTO users (external_id, name, gender, is_real)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id)
		DO UPDATE SET name = EXCLUDED.name, gender = EXCLUDED.gender
		RETURNING id, external_id, name, gender, is_real, created_at
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, externalID, name, gender, isReal).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Name,
		&user.Gender,
		&user.IsReal,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, external_id, name, gender, is_real, created_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Name,
		&user.Gender,
		&user.IsReal,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByExternalID retrieves a user by their external (messenger) id
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*User, error) {
	query := `
		SELECT id, external_id, name, gender, is_real, created_at
		FROM users
		WHERE external_id = $1
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, externalID).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Name,
		&user.Gender,
		&user.IsReal,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by external id: %w", err)
	}

	return user, nil
}

// List retrieves all users with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM users`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT id, external_id, name, gender, is_real, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID,
			&user.ExternalID,
			&user.Name,
			&user.Gender,
			&user.IsReal,
			&user.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, total, nil
}
