package service

import (
	"context"

	"firebase.google.com/go/messaging"
	"github.com/sirupsen/logrus"
)

// PushResult is the per-token outcome of a multicast send.
type PushResult struct {
	Token        string
	Success      bool
	MessageID    string
	InvalidToken bool
	Error        error
}

// PushSender abstracts the FCM multicast call so usecases can be tested
// without the Firebase SDK.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string, priority string) ([]PushResult, error)
}

type fcmSender struct {
	client *messaging.Client
	log    *logrus.Logger
}

func NewFCMSender(client *messaging.Client, log *logrus.Logger) PushSender {
	return &fcmSender{client: client, log: log}
}

// SendMulticast sends one batched call for the whole token list and maps
// the batch response back to per-token results.
func (s *fcmSender) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string, priority string) ([]PushResult, error) {
	if data == nil {
		data = map[string]string{}
	}

	androidPriority := "normal"
	if priority == "high" || priority == "urgent" {
		androidPriority = "high"
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
					Badge: intPtr(1),
				},
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}

	batch, err := s.client.SendMulticast(ctx, message)
	if err != nil {
		return nil, err
	}

	results := make([]PushResult, len(batch.Responses))
	for i, resp := range batch.Responses {
		result := PushResult{
			Token:     tokens[i],
			Success:   resp.Success,
			MessageID: resp.MessageID,
			Error:     resp.Error,
		}
		if resp.Error != nil && messaging.IsRegistrationTokenNotRegistered(resp.Error) {
			result.InvalidToken = true
		}
		results[i] = result
	}

	s.log.Infof("Push multicast sent: %d success, %d failure", batch.SuccessCount, batch.FailureCount)

	return results, nil
}

func intPtr(v int) *int {
	return &v
}
