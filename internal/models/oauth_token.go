package models

import "time"

// OAuthToken stores the calendar owner's OAuth token when a database is
// configured. One row per calendar.
type OAuthToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CalendarID   string    `gorm:"size:255;uniqueIndex;not null" json:"calendar_id"`
	AccessToken  string    `gorm:"type:text" json:"-"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	TokenType    string    `gorm:"size:50" json:"token_type"`
	Expiry       time.Time `json:"expiry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
