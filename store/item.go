package store

import (
	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/model"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newID() (string, error) {
	return gonanoid.Generate(idCharset, 16)
}

// Items is the ownership-scoped store for marketplace listings.
type Items struct {
	db *gorm.DB
}

func NewItems(db *gorm.DB) *Items {
	return &Items{db: db}
}

// ItemPatch carries a sparse update; nil fields are left untouched. DateAdded
// is never refreshed by an update.
type ItemPatch struct {
	Name          *string `json:"itemName"`
	Description   *string `json:"itemDescription"`
	Price         *string `json:"itemPrice"`
	Category      *string `json:"itemCategory"`
	Picture       *string `json:"itemPicture"`
	ContactNumber *string `json:"contactNumber"`
}

// Create stamps the author snapshot, id, creation timestamp and default
// liveness onto the listing and persists it.
func (s *Items) Create(author *auth.Claims, item *model.Item) error {
	id, err := newID()
	if err != nil {
		return err
	}

	item.ID = id
	item.AuthorEmail = author.Email
	item.AuthorName = author.Name
	item.AuthorPicture = author.Picture
	item.DateAdded = time.Now()

	if item.ContactNumber == "" {
		item.ContactNumber = author.ContactNumber
	}

	if item.Live == "" {
		item.Live = "y"
	}

	return s.db.Create(item).Error
}

func (s *Items) List(category string) ([]model.Item, error) {
	q := s.db.Model(&model.Item{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var items []model.Item
	if err := q.Order("date_added DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Items) ListByAuthor(email string) ([]model.Item, error) {
	var items []model.Item

	err := s.db.Where("author_email = ?", email).Order("date_added DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Items) get(id string) (*model.Item, error) {
	var item model.Item

	err := s.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &item, nil
}

// Update applies a sparse patch. Existence is checked before ownership.
func (s *Items) Update(email, id string, patch *ItemPatch) error {
	item, err := s.get(id)
	if err != nil {
		return err
	}

	if !isOwner(item.AuthorEmail, email) {
		return ErrForbidden
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Picture != nil {
		updates["picture"] = *patch.Picture
	}
	if patch.ContactNumber != nil {
		updates["contact_number"] = *patch.ContactNumber
	}

	if len(updates) == 0 {
		return nil
	}

	return s.db.Model(&model.Item{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the listing. Favorites and posted-item references pointing at
// it are left behind, matching the original system's behavior.
func (s *Items) Delete(email, id string) error {
	item, err := s.get(id)
	if err != nil {
		return err
	}

	if !isOwner(item.AuthorEmail, email) {
		return ErrForbidden
	}

	return s.db.Where("id = ?", id).Delete(&model.Item{}).Error
}

// ToggleLive flips the liveness flag and returns the new state.
func (s *Items) ToggleLive(email, id string) (string, error) {
	item, err := s.get(id)
	if err != nil {
		return "", err
	}

	if !isOwner(item.AuthorEmail, email) {
		return "", ErrForbidden
	}

	newState := "y"
	if item.Live == "y" {
		newState = "n"
	}

	err = s.db.Model(&model.Item{}).Where("id = ?", id).Update("live", newState).Error
	if err != nil {
		return "", err
	}

	return newState, nil
}
