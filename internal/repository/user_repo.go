package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// List returns every user
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT username, name, avatar_url FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		var u models.User
		var avatarURL sql.NullString
		if err := rows.Scan(&u.Username, &u.Name, &avatarURL); err != nil {
			return nil, err
		}
		u.AvatarURL = avatarURL.String
		users = append(users, &u)
	}
	return users, rows.Err()
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT username, name, avatar_url FROM users WHERE username = $1`

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var u models.User
	var avatarURL sql.NullString
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.Username, &u.Name, &avatarURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.AvatarURL = avatarURL.String

	return &u, nil
}
