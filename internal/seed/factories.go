package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"newsdesk/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures bulk generation of fake data on top of the fixtures.
type Options struct {
	NumUsers    int
	NumArticles int
	NumComments int
	MaxDays     int
}

// Factory builds fake domain entities and persists them. Development only;
// the fixture dataset is the one tests rely on.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	if opts.MaxDays <= 0 {
		opts.MaxDays = 365
	}
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(seed))}
}

func (f *Factory) pastTimestamp() time.Time {
	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUsers generates n users with unique usernames.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(gofakeit.FirstName()),
			strings.ToLower(gofakeit.LastName()), i)
		user := &models.User{
			Username:  username,
			Name:      gofakeit.Name(),
			AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %q: %w", username, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateArticles generates n articles spread across the given users and
// topics, with created_at timestamps scattered over the past MaxDays.
func (f *Factory) CreateArticles(users []*models.User, topics []*models.Topic, n int) ([]*models.Article, error) {
	if len(users) == 0 || len(topics) == 0 {
		return nil, fmt.Errorf("cannot create articles without users and topics")
	}

	articles := make([]*models.Article, 0, n)
	for i := 0; i < n; i++ {
		article := &models.Article{
			Title:         gofakeit.Sentence(5),
			Topic:         topics[f.rng.Intn(len(topics))].Slug,
			Author:        users[f.rng.Intn(len(users))].Username,
			Body:          gofakeit.Paragraph(2, 4, 8, "\n\n"),
			ArticleImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/700/700", gofakeit.UUID()),
			CreatedAt:     f.pastTimestamp(),
		}
		if err := f.db.Create(article).Error; err != nil {
			return nil, fmt.Errorf("failed to create article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// CreateComments generates n comments spread across articles and users. Votes
// skew small and occasionally negative, like real comment sections.
func (f *Factory) CreateComments(users []*models.User, articles []*models.Article, n int) error {
	if len(users) == 0 || len(articles) == 0 {
		return fmt.Errorf("cannot create comments without users and articles")
	}

	for i := 0; i < n; i++ {
		comment := &models.Comment{
			Body:      gofakeit.Sentence(f.rng.Intn(20) + 3),
			ArticleID: articles[f.rng.Intn(len(articles))].ArticleID,
			Author:    users[f.rng.Intn(len(users))].Username,
			Votes:     f.rng.Intn(25) - 5,
			CreatedAt: f.pastTimestamp(),
		}
		if err := f.db.Create(comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}
	return nil
}

// Generate applies the fixtures and then layers generated data on top.
func Generate(db *gorm.DB, opts Options) error {
	fixtures, err := LoadFixtures()
	if err != nil {
		return err
	}
	if err := Apply(db, fixtures); err != nil {
		return err
	}

	f := NewFactory(db, opts)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return err
	}

	topics := make([]*models.Topic, 0)
	if err := db.Find(&topics).Error; err != nil {
		return err
	}

	articles, err := f.CreateArticles(users, topics, opts.NumArticles)
	if err != nil {
		return err
	}

	return f.CreateComments(users, articles, opts.NumComments)
}
