// Package seed populates the database with fixture and generated data for
// development and testing.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"newsdesk/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures.yml
var fixturesYAML []byte

// Fixtures is the deterministic dataset shipped with the repo. Articles and
// comments reference their parents by natural key so the file stays readable;
// ids are resolved at insert time.
type Fixtures struct {
	Topics   []TopicFixture   `yaml:"topics"`
	Users    []UserFixture    `yaml:"users"`
	Articles []ArticleFixture `yaml:"articles"`
	Comments []CommentFixture `yaml:"comments"`
}

type TopicFixture struct {
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type UserFixture struct {
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

type ArticleFixture struct {
	Title         string    `yaml:"title"`
	Topic         string    `yaml:"topic"`
	Author        string    `yaml:"author"`
	Body          string    `yaml:"body"`
	Votes         int       `yaml:"votes"`
	ArticleImgURL string    `yaml:"article_img_url"`
	CreatedAt     time.Time `yaml:"created_at"`
}

type CommentFixture struct {
	Body         string    `yaml:"body"`
	ArticleTitle string    `yaml:"article_title"`
	Author       string    `yaml:"author"`
	Votes        int       `yaml:"votes"`
	CreatedAt    time.Time `yaml:"created_at"`
}

// LoadFixtures parses the embedded fixture file.
func LoadFixtures() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Apply inserts the fixture dataset. Tables are populated in dependency order
// so referential constraints hold: topics and users first, then articles,
// then comments.
func Apply(db *gorm.DB, f *Fixtures) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, t := range f.Topics {
			if err := tx.Create(&models.Topic{Slug: t.Slug, Description: t.Description}).Error; err != nil {
				return fmt.Errorf("failed to insert topic %q: %w", t.Slug, err)
			}
		}

		for _, u := range f.Users {
			if err := tx.Create(&models.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}).Error; err != nil {
				return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
			}
		}

		articleIDs := make(map[string]int, len(f.Articles))
		for _, a := range f.Articles {
			article := models.Article{
				Title:         a.Title,
				Topic:         a.Topic,
				Author:        a.Author,
				Body:          a.Body,
				Votes:         a.Votes,
				ArticleImgURL: a.ArticleImgURL,
				CreatedAt:     a.CreatedAt,
			}
			if article.ArticleImgURL == "" {
				article.ArticleImgURL = models.DefaultArticleImgURL
			}
			if err := tx.Create(&article).Error; err != nil {
				return fmt.Errorf("failed to insert article %q: %w", a.Title, err)
			}
			articleIDs[a.Title] = article.ArticleID
		}

		for _, c := range f.Comments {
			articleID, ok := articleIDs[c.ArticleTitle]
			if !ok {
				return fmt.Errorf("comment references unknown article %q", c.ArticleTitle)
			}
			comment := models.Comment{
				Body:      c.Body,
				ArticleID: articleID,
				Author:    c.Author,
				Votes:     c.Votes,
				CreatedAt: c.CreatedAt,
			}
			if err := tx.Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to insert comment on %q: %w", c.ArticleTitle, err)
			}
		}

		return nil
	})
}

// Clear truncates all domain tables in reverse dependency order.
func Clear(db *gorm.DB) error {
	for _, model := range []any{
		&models.Comment{},
		&models.Article{},
		&models.User{},
		&models.Topic{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
