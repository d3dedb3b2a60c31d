package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"newsdesk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func articleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"article_id", "title", "topic", "author", "body",
		"article_img_url", "votes", "comment_count", "created_at",
	})
}

func TestArticleRepository_List_SortAllowList(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		sortBy string
		order  string
	}{
		{"unknown sort column", "article_img_url", "desc"},
		{"injection attempt in sort_by", "created_at; DROP TABLE articles", "desc"},
		{"unknown order", "created_at", "sideways"},
		{"injection attempt in order", "created_at", "desc; --"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.List(ctx, "", tt.sortBy, tt.order)
			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.Status)
		})
	}

	// Rejection happens before any SQL is built
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_List_DefaultOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT articles.*, COUNT(comments.comment_id) AS comment_count FROM "articles" LEFT JOIN comments ON comments.article_id = articles.article_id`)).
		WillReturnRows(articleRows().
			AddRow(2, "B", "mitch", "sam", "...", "", 0, 1, now).
			AddRow(1, "A", "mitch", "jonny", "...", "", 100, 4, now.Add(-time.Hour)))

	articles, err := repo.List(ctx, "", "", "")
	assert.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, 1, articles[0].CommentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_List_OrderFragmentFromMap(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	// The ORDER BY text comes from the closed column map, not the raw input
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY articles.votes ASC`)).
		WillReturnRows(articleRows())

	_, err := repo.List(ctx, "", "votes", "asc")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_List_TopicFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE articles.topic = $1`)).
		WithArgs("cats").
		WillReturnRows(articleRows())

	articles, err := repo.List(ctx, "cats", "", "")
	assert.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Len(t, articles, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_AdjustVotes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	t.Run("applies delta and refetches", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "articles" SET "votes"=votes + $1`)).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT articles.*, COUNT(comments.comment_id) AS comment_count`)).
			WillReturnRows(articleRows().
				AddRow(1, "A", "mitch", "jonny", "...", "", 105, 4, time.Now()))

		article, err := repo.AdjustVotes(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 105, article.Votes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "articles" SET "votes"=votes + $1`)).
			WithArgs(1, 9999).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := repo.AdjustVotes(ctx, 9999, 1)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticleRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	t.Run("cascades comments inside one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE article_id = $1`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "articles"`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing article rolls back with not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE article_id = $1`)).
			WithArgs(9999).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "articles"`)).
			WithArgs(9999).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 9999)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
