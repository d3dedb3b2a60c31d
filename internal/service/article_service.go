package service

import (
	"context"

	"newsdesk/internal/models"
	"newsdesk/internal/repository"

	"golang.org/x/sync/errgroup"
)

// ArticleService orchestrates article reads and writes.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	exists      repository.ExistsChecker
}

// ListArticlesInput carries the query parameters for listing articles.
type ListArticlesInput struct {
	Topic  string
	SortBy string
	Order  string
}

// CreateArticleInput carries the accepted fields for creating an article.
// Only these fields are read from the request, so extraneous input is ignored
// by construction.
type CreateArticleInput struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	ArticleImgURL string
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository, exists repository.ExistsChecker) *ArticleService {
	return &ArticleService{articleRepo: articleRepo, exists: exists}
}

// ListArticles returns articles for the given filter and sort. When a topic
// filter is supplied, the topic's existence is checked concurrently with the
// primary query so an unknown topic yields not-found rather than an empty list.
func (s *ArticleService) ListArticles(ctx context.Context, in ListArticlesInput) ([]*models.Article, error) {
	primary := func(ctx context.Context) ([]*models.Article, error) {
		return s.articleRepo.List(ctx, in.Topic, in.SortBy, in.Order)
	}

	var check func(context.Context) error
	if in.Topic != "" {
		check = func(ctx context.Context) error {
			return s.exists.Exists(ctx, "topics", "slug", in.Topic)
		}
	}

	return scopedRead(ctx, primary, check)
}

// GetArticle returns a single article with its comment count.
func (s *ArticleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// CreateArticle inserts a new article. Title, topic, author and body are
// required; the image URL falls back to the placeholder when omitted. The
// referenced author and topic must exist.
func (s *ArticleService) CreateArticle(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	if in.Title == "" || in.Topic == "" || in.Author == "" || in.Body == "" {
		return nil, models.NewBadRequestError()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.exists.Exists(gctx, "users", "username", in.Author)
	})
	g.Go(func() error {
		return s.exists.Exists(gctx, "topics", "slug", in.Topic)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	imgURL := in.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	article := &models.Article{
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		ArticleImgURL: imgURL,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateVotes applies the signed delta to an article's vote counter.
func (s *ArticleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	return s.articleRepo.AdjustVotes(ctx, id, delta)
}

// DeleteArticle removes an article and cascades its comments.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int) error {
	return s.articleRepo.Delete(ctx, id)
}
