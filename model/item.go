package model

import "time"

// Item is a marketplace listing. The author fields are a snapshot taken at
// creation time and are not kept in sync with later profile edits, except for
// the contact number which is rewritten when the owner updates their phone
// number.
type Item struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	AuthorEmail   string    `gorm:"index;not null" json:"userEmail"`
	AuthorName    string    `json:"userName"`
	AuthorPicture string    `json:"userPicture"`
	Name          string    `json:"itemName"`
	Description   string    `json:"itemDescription"`
	Price         string    `json:"itemPrice"`
	Category      string    `gorm:"index" json:"itemCategory"`
	Picture       string    `json:"itemPicture"`
	ContactNumber string    `json:"contactNumber"`
	Live          string    `gorm:"default:y" json:"live"` // "y" or "n"
	DateAdded     time.Time `json:"dateAdded"`
}
