package notify

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCM multicast messages carry at most 500 tokens per request.
const multicastLimit = 500

// FCM sends push notifications through Firebase Cloud Messaging.
type FCM struct {
	client *messaging.Client
}

func NewFCM(ctx context.Context) (*FCM, error) {
	app, err := firebase.NewApp(ctx, nil,
		option.WithCredentialsFile(viper.GetString("firebase.credentials_file")),
	)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &FCM{client: client}, nil
}

func (f *FCM) Send(ctx context.Context, tokens []string, title, body string) error {
	for len(tokens) > 0 {
		batch := tokens
		if len(batch) > multicastLimit {
			batch = batch[:multicastLimit]
		}
		tokens = tokens[len(batch):]

		resp, err := f.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
		})
		if err != nil {
			return err
		}

		if resp.FailureCount > 0 {
			zap.L().Warn("Some push notifications failed to deliver",
				zap.Int("failed", resp.FailureCount),
				zap.Int("sent", resp.SuccessCount),
			)
		}
	}

	return nil
}
