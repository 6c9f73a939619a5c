package store

import (
	"campusswap/marketplace-api/model"
	"errors"

	"gorm.io/gorm"
)

// Users is the directory of first-party user records, keyed by verified email.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) FindByEmail(email string) (*model.User, error) {
	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

// UpsertOnFirstSight creates the record on the first verified sign-in for an
// email and returns it unchanged on every later one. The contact number is
// only set at creation; repeat sign-ins never overwrite it.
func (s *Users) UpsertOnFirstSight(email, name, picture, contactNumber string) (*model.User, bool, error) {
	user, err := s.FindByEmail(email)
	if err == nil {
		return user, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	user = &model.User{
		Email:         email,
		Name:          name,
		Picture:       picture,
		ContactNumber: contactNumber,
		Favorites:     model.StringSet{},
		PostedItems:   model.StringSet{},
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// UpdateContactNumber sets the user's contact number and rewrites the
// denormalized copy on every item they authored. Returns the number of items
// touched.
func (s *Users) UpdateContactNumber(email, newNumber string) (int64, error) {
	res := s.db.Model(&model.User{}).Where("email = ?", email).Update("contact_number", newNumber)
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	res = s.db.Model(&model.Item{}).Where("author_email = ?", email).Update("contact_number", newNumber)
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

func (s *Users) SetPushToken(email, token string) error {
	res := s.db.Model(&model.User{}).Where("email = ?", email).Update("fcm_token", token)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Users) HasPushToken(email string) (bool, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return false, err
	}

	return user.FCMToken != "", nil
}

// AllPushTokens returns every registered push delivery token, for broadcast
// fan-out.
func (s *Users) AllPushTokens() ([]string, error) {
	var tokens []string

	err := s.db.Model(&model.User{}).
		Where("fcm_token <> ''").
		Pluck("fcm_token", &tokens).
		Error
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// ToggleFavorite removes the resource id from the user's favorite set if
// present and adds it otherwise. Two consecutive toggles restore the original
// set.
func (s *Users) ToggleFavorite(email, resourceID string) (bool, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return false, err
	}

	nowFavorite := !user.Favorites.Has(resourceID)
	if nowFavorite {
		user.Favorites = user.Favorites.Add(resourceID)
	} else {
		user.Favorites = user.Favorites.Remove(resourceID)
	}

	err = s.db.Model(&model.User{}).Where("email = ?", email).Update("favorites", user.Favorites).Error
	if err != nil {
		return false, err
	}

	return nowFavorite, nil
}

func (s *Users) ListFavorites(email string) (model.StringSet, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	return user.Favorites, nil
}

// AppendPostedItem records a newly created item id on the author's record.
func (s *Users) AppendPostedItem(email, itemID string) error {
	user, err := s.FindByEmail(email)
	if err != nil {
		return err
	}

	return s.db.Model(&model.User{}).
		Where("email = ?", email).
		Update("posted_items", user.PostedItems.Add(itemID)).
		Error
}
