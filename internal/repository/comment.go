package repository

import (
	"context"
	"errors"

	"newsdesk/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int) (int64, error)
	AdjustVotes(ctx context.Context, id, delta int) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle returns all comments for an article, newest first. An article
// with no comments yields an empty slice, not an error.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Delete removes a comment by id and reports the number of affected rows.
// Zero rows means the id did not exist; classification is left to the caller.
func (r *commentRepository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	return res.RowsAffected, res.Error
}

// AdjustVotes adds the signed delta to the stored counter and returns the
// updated row.
func (r *commentRepository) AdjustVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError()
	}

	var comment models.Comment
	err := r.db.WithContext(ctx).Take(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
