// Package service contains background jobs
package service

import (
	"context"
	"fmt"
	"time"

	"campusswap/marketplace-api/notify"
	"campusswap/marketplace-api/store"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reminder scans for events starting within the next hour and notifies every
// device token registered on them. Runs once a minute.
type Reminder struct {
	events   *store.Events
	notifier notify.Notifier
	cron     *cron.Cron
}

func NewReminder(events *store.Events, notifier notify.Notifier) *Reminder {
	return &Reminder{
		events:   events,
		notifier: notifier,
		cron:     cron.New(),
	}
}

func (r *Reminder) Start() error {
	_, err := r.cron.AddFunc("* * * * *", r.scan)
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

func (r *Reminder) Stop() {
	r.cron.Stop()
}

func (r *Reminder) scan() {
	now := time.Now()

	events, err := r.events.Upcoming(now, now.Add(time.Hour))
	if err != nil {
		zap.L().Error("Failed to scan for upcoming events", zap.Error(err))
		return
	}

	for _, event := range events {
		if len(event.Notifications) == 0 {
			continue
		}

		err = r.notifier.Send(context.Background(), event.Notifications,
			"Event Reminder",
			fmt.Sprintf("Event %q is starting soon!", event.Name),
		)
		if err != nil {
			zap.L().Error("Failed to send event reminder", zap.Error(err), zap.String("eventID", event.ID))
			continue
		}

		zap.L().Info("Sent event reminder", zap.String("eventID", event.ID), zap.Int("tokens", len(event.Notifications)))
	}
}
