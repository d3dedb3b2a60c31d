package models

import "time"

// Comment represents a comment left on an article.
type Comment struct {
	CommentID  int      `gorm:"primaryKey" json:"comment_id"`
	Body       string   `gorm:"type:text;not null" json:"body"`
	ArticleID  int      `gorm:"not null;index" json:"article_id"`
	ArticleRef *Article `gorm:"foreignKey:ArticleID;references:ArticleID" json:"-"`
	Author     string   `gorm:"not null;index" json:"author"`
	AuthorRef  *User    `gorm:"foreignKey:Author;references:Username" json:"-"`
	Votes      int      `gorm:"not null;default:0" json:"votes"`
	CreatedAt  time.Time `json:"created_at"`
}
