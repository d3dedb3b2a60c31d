package service

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/repository"
)

// TopicService orchestrates topic reads and writes.
type TopicService struct {
	topicRepo repository.TopicRepository
}

// CreateTopicInput carries the accepted fields for creating a topic.
type CreateTopicInput struct {
	Slug        string
	Description string
}

// NewTopicService creates a new TopicService
func NewTopicService(topicRepo repository.TopicRepository) *TopicService {
	return &TopicService{topicRepo: topicRepo}
}

// ListTopics returns all topics.
func (s *TopicService) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	return s.topicRepo.List(ctx)
}

// CreateTopic inserts a new topic. The slug is required.
func (s *TopicService) CreateTopic(ctx context.Context, in CreateTopicInput) (*models.Topic, error) {
	if in.Slug == "" {
		return nil, models.NewBadRequestError()
	}

	topic := &models.Topic{
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}
