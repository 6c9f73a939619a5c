package model

import "time"

// Event is a campus event listing. Notifications holds the push delivery
// tokens registered for a reminder; any caller may register one.
type Event struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	AuthorEmail   string    `gorm:"index;not null" json:"userEmail"`
	AuthorName    string    `json:"userName"`
	AuthorPicture string    `json:"userPicture"`
	Name          string    `json:"eventName"`
	Description   string    `json:"eventDescription"`
	Date          time.Time `gorm:"index" json:"eventDate"`
	Time          string    `json:"eventTime"`
	Location      string    `json:"eventLocation"`
	Category      string    `gorm:"index" json:"eventCategory"`
	Notifications StringSet `json:"notifications"`
	DateAdded     time.Time `json:"dateAdded"`
}
