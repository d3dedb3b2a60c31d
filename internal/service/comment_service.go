package service

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/repository"

	"golang.org/x/sync/errgroup"
)

// CommentService orchestrates comment reads and writes.
type CommentService struct {
	commentRepo repository.CommentRepository
	exists      repository.ExistsChecker
}

// CreateCommentInput carries the accepted fields for creating a comment.
// Extraneous request fields are ignored by construction.
type CreateCommentInput struct {
	Username string
	Body     string
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, exists repository.ExistsChecker) *CommentService {
	return &CommentService{commentRepo: commentRepo, exists: exists}
}

// ListComments returns all comments for an article, newest first. The
// article's existence is checked concurrently with the primary query so "no
// comments yet" and "no such article" are told apart.
func (s *CommentService) ListComments(ctx context.Context, articleID int) ([]*models.Comment, error) {
	primary := func(ctx context.Context) ([]*models.Comment, error) {
		return s.commentRepo.ListByArticle(ctx, articleID)
	}
	check := func(ctx context.Context) error {
		return s.exists.Exists(ctx, "articles", "article_id", articleID)
	}
	return scopedRead(ctx, primary, check)
}

// CreateComment inserts a comment on an article. Username and body are
// required; both the article and the author must exist.
func (s *CommentService) CreateComment(ctx context.Context, articleID int, in CreateCommentInput) (*models.Comment, error) {
	if in.Username == "" || in.Body == "" {
		return nil, models.NewBadRequestError()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.exists.Exists(gctx, "articles", "article_id", articleID)
	})
	g.Go(func() error {
		return s.exists.Exists(gctx, "users", "username", in.Username)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      in.Body,
		ArticleID: articleID,
		Author:    in.Username,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id; a missing id is a not-found error.
func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	affected, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewNotFoundError()
	}
	return nil
}

// UpdateVotes applies the signed delta to a comment's vote counter.
func (s *CommentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	return s.commentRepo.AdjustVotes(ctx, id, delta)
}
