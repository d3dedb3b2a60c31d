package repository

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/models"

	"gorm.io/gorm"
)

// articleSortColumns is the closed set of sortable columns. ORDER BY fragments
// are built only from values of this map; caller input selects a key and is
// never interpolated into SQL.
var articleSortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

var articleSortOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, topic, sortBy, order string) ([]*models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	AdjustVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// withCommentCount joins comments so each article row carries its aggregate
// comment_count.
func (r *articleRepository) withCommentCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// List returns articles with computed comment counts, optionally filtered to a
// topic. sortBy and order are validated against the closed allow-lists before
// any query runs; unknown values fail with a bad-request error.
func (r *articleRepository) List(ctx context.Context, topic, sortBy, order string) ([]*models.Article, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "desc"
	}

	column, ok := articleSortColumns[sortBy]
	if !ok {
		return nil, models.NewBadRequestError()
	}
	direction, ok := articleSortOrders[order]
	if !ok {
		return nil, models.NewBadRequestError()
	}

	q := r.withCommentCount(ctx)
	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}

	// Initialized so a topic with no articles serializes as [] rather than null.
	articles := make([]*models.Article, 0)
	err := q.Order(fmt.Sprintf("%s %s", column, direction)).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := r.withCommentCount(ctx).
		Where("articles.article_id = ?", id).
		Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// AdjustVotes adds the signed delta to the stored counter and returns the
// updated row. Counters may go negative; no floor is enforced.
func (r *articleRepository) AdjustVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError()
	}
	return r.GetByID(ctx, id)
}

// Delete removes an article and its comments in one transaction. Comments go
// first to satisfy the referential constraint.
func (r *articleRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError()
		}
		return nil
	})
}
