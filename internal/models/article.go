package models

import "time"

// DefaultArticleImgURL is applied when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents a published article.
type Article struct {
	ArticleID     int    `gorm:"primaryKey" json:"article_id"`
	Title         string `gorm:"not null" json:"title"`
	Topic         string `gorm:"not null;index" json:"topic"`
	TopicRef      *Topic `gorm:"foreignKey:Topic;references:Slug" json:"-"`
	Author        string `gorm:"not null;index" json:"author"`
	AuthorRef     *User  `gorm:"foreignKey:Author;references:Username" json:"-"`
	Body          string `gorm:"type:text;not null" json:"body"`
	ArticleImgURL string `json:"article_img_url"`
	Votes         int    `gorm:"not null;default:0" json:"votes"`
	// CommentCount is not persisted; computed at query time
	CommentCount int       `gorm:"->;-:migration" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}
