// Package models contains data structures for the application's domain models.
package models

// Topic is a subject area articles are filed under. The slug doubles as the
// primary key and the value used for article filtering.
type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `json:"description"`
}
