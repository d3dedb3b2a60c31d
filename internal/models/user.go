package models

// User is an author identity. Users are read-only through the API surface.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
