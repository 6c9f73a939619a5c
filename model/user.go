// Package model defines database models
package model

import "time"

// User is keyed by the email verified by the identity provider. The email is
// immutable after creation and users are never deleted.
type User struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Email         string    `gorm:"uniqueIndex;not null" json:"userEmail"`
	Name          string    `json:"userName"`
	Picture       string    `json:"userPicture"`
	ContactNumber string    `json:"contactNumber"`
	FCMToken      string    `gorm:"column:fcm_token" json:"-"`
	Favorites     StringSet `json:"favouriteItems"`
	PostedItems   StringSet `json:"itemsPosted"`
	CreatedAt     time.Time `json:"-"`
}
