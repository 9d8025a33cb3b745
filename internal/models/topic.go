package models

// Topic represents a topic articles are filed under
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// NewTopic is the body of POST /api/topics
type NewTopic struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}
