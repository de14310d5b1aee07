package firebase

import (
	"context"
	"fmt"

	"medico-backend/config"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/messaging"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase Admin SDK clients used by the service:
// Auth for ID-token verification, Messaging for push fan-out.
type Clients struct {
	Auth      *auth.Client
	Messaging *messaging.Client
}

func NewClients(ctx context.Context, cfg config.FirebaseConfig) (*Clients, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase auth client: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase messaging client: %w", err)
	}

	logrus.Info("Firebase Admin SDK initialized")

	return &Clients{
		Auth:      authClient,
		Messaging: messagingClient,
	}, nil
}
