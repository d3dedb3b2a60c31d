package repository

import (
	"context"
	"fmt"

	"newsdesk/internal/models"

	"gorm.io/gorm"
)

// existsLookups enumerates the table/column pairs an existence check may hit.
// Both identifiers come from this map, never from the caller's strings, so no
// caller-controlled identifier reaches the SQL text.
var existsLookups = map[string]string{
	"topics.slug":         "slug = ?",
	"articles.article_id": "article_id = ?",
	"users.username":      "username = ?",
	"comments.comment_id": "comment_id = ?",
}

// ExistsChecker confirms a referenced entity is present. It distinguishes
// "filter matched zero rows" from "filter references a nonexistent resource".
type ExistsChecker interface {
	Exists(ctx context.Context, table, column string, value any) error
}

type existsChecker struct {
	db *gorm.DB
}

// NewExistsChecker creates a new ExistsChecker
func NewExistsChecker(db *gorm.DB) ExistsChecker {
	return &existsChecker{db: db}
}

// Exists resolves nil when a row matches and a not-found error when none does.
func (c *existsChecker) Exists(ctx context.Context, table, column string, value any) error {
	cond, ok := existsLookups[table+"."+column]
	if !ok {
		return fmt.Errorf("exists: unsupported lookup %s.%s", table, column)
	}

	var count int64
	if err := c.db.WithContext(ctx).Table(table).Where(cond, value).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.NewNotFoundError()
	}
	return nil
}
