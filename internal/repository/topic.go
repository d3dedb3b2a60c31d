// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"newsdesk/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	// Initialized so an empty table serializes as [] rather than null.
	topics := make([]*models.Topic, 0)
	err := r.db.WithContext(ctx).Find(&topics).Error
	return topics, err
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}
