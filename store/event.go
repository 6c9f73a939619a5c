package store

import (
	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Events is the store for event listings. Unlike items they carry no liveness
// flag, but hold the push tokens registered for their reminder.
type Events struct {
	db *gorm.DB
}

func NewEvents(db *gorm.DB) *Events {
	return &Events{db: db}
}

func (s *Events) Create(author *auth.Claims, event *model.Event) error {
	id, err := newID()
	if err != nil {
		return err
	}

	event.ID = id
	event.AuthorEmail = author.Email
	event.AuthorName = author.Name
	event.AuthorPicture = author.Picture
	event.DateAdded = time.Now()

	if event.Notifications == nil {
		event.Notifications = model.StringSet{}
	}

	return s.db.Create(event).Error
}

func (s *Events) List(category string) ([]model.Event, error) {
	q := s.db.Model(&model.Event{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var events []model.Event
	if err := q.Order("date_added DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// AddNotificationToken registers a push token for the event's reminder.
// Idempotent, and deliberately unscoped: any caller may register.
func (s *Events) AddNotificationToken(id, token string) error {
	var event model.Event

	err := s.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	return s.db.Model(&model.Event{}).
		Where("id = ?", id).
		Update("notifications", event.Notifications.Add(token)).
		Error
}

// Upcoming returns events starting within [from, to).
func (s *Events) Upcoming(from, to time.Time) ([]model.Event, error) {
	var events []model.Event

	err := s.db.Where("date >= ? AND date < ?", from, to).Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
