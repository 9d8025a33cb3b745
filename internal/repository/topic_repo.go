package repository

import (
	"context"
	"database/sql"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := make([]*models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		var description sql.NullString
		if err := rows.Scan(&t.Slug, &description); err != nil {
			return nil, err
		}
		t.Description = description.String
		topics = append(topics, &t)
	}
	return topics, rows.Err()
}

// Create inserts a new topic
func (r *topicRepo) Create(ctx context.Context, in *models.NewTopic) (*models.Topic, error) {
	query := `INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description`

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var t models.Topic
	if err := r.db.QueryRowContext(ctx, query, in.Slug, in.Description).Scan(&t.Slug, &t.Description); err != nil {
		return nil, MapError(err)
	}
	return &t, nil
}
