package service

import (
	"context"
	"errors"
	"testing"

	"newsdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArticleRepository is a mock of the ArticleRepository interface
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) List(ctx context.Context, topic, sortBy, order string) ([]*models.Article, error) {
	args := m.Called(ctx, topic, sortBy, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) AdjustVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExistsChecker is a mock of the ExistsChecker interface
type MockExistsChecker struct {
	mock.Mock
}

func (m *MockExistsChecker) Exists(ctx context.Context, table, column string, value any) error {
	args := m.Called(ctx, table, column, value)
	return args.Error(0)
}

func TestArticleService_ListArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("no existence check without a topic filter", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		repo.On("List", mock.Anything, "", "", "").
			Return([]*models.Article{{ArticleID: 1}}, nil)

		articles, err := svc.ListArticles(ctx, ListArticlesInput{})
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		exists.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown topic wins over an empty result", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		repo.On("List", mock.Anything, "bananas", "", "").
			Return([]*models.Article{}, nil)
		exists.On("Exists", mock.Anything, "topics", "slug", "bananas").
			Return(models.NewNotFoundError())

		_, err := svc.ListArticles(ctx, ListArticlesInput{Topic: "bananas"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("known topic passes the primary result through", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		repo.On("List", mock.Anything, "cats", "votes", "asc").
			Return([]*models.Article{}, nil)
		exists.On("Exists", mock.Anything, "topics", "slug", "cats").
			Return(nil)

		articles, err := svc.ListArticles(ctx, ListArticlesInput{Topic: "cats", SortBy: "votes", Order: "asc"})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleService_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("missing required field fails before any lookup", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{Topic: "cats", Author: "lurker", Body: "..."})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Status)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		exists.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("defaults the image url", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		exists.On("Exists", mock.Anything, "users", "username", "lurker").Return(nil)
		exists.On("Exists", mock.Anything, "topics", "slug", "cats").Return(nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.ArticleImgURL == models.DefaultArticleImgURL
		})).Return(nil)

		article, err := svc.CreateArticle(ctx, CreateArticleInput{
			Title: "T", Topic: "cats", Author: "lurker", Body: "...",
		})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultArticleImgURL, article.ArticleImgURL)
		repo.AssertExpectations(t)
	})

	t.Run("unknown author blocks the insert", func(t *testing.T) {
		repo := new(MockArticleRepository)
		exists := new(MockExistsChecker)
		svc := NewArticleService(repo, exists)

		exists.On("Exists", mock.Anything, "users", "username", "nobody").
			Return(models.NewNotFoundError())
		exists.On("Exists", mock.Anything, "topics", "slug", "cats").Return(nil)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{
			Title: "T", Topic: "cats", Author: "nobody", Body: "...",
		})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Status)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
