package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"newsdesk/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &models.Comment{Body: "Great read", ArticleID: 1, Author: "lurker"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(19))
	mock.ExpectCommit()

	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.Equal(t, 19, comment.CommentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByArticle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE article_id = $1 ORDER BY created_at desc`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "body", "article_id", "author", "votes", "created_at"}).
			AddRow(4, "I hate streaming noses", 1, "icellusedkars", 0, now).
			AddRow(2, "The beautiful thing about treasure is that it exists.", 1, "butter_bridge", 14, now.Add(-time.Hour)))

	comments, err := repo.ListByArticle(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "I hate streaming noses", comments[0].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("reports affected rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments"`)).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.Delete(ctx, 5)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, affected)
	})

	t.Run("zero rows for a missing id", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments"`)).
			WithArgs(9999).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repo.Delete(ctx, 9999)
		assert.NoError(t, err)
		assert.Zero(t, affected)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
