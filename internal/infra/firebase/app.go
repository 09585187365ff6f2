// Package firebase wires the Firebase Admin SDK: Firestore for user location
// records and Firebase Auth for ID token verification.
package firebase

import (
	"context"
	"log/slog"

	"afrimart/config"
	"afrimart/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams defines the dependencies for creating the Firebase app.
type AppParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app from the configured project and credentials.
// Without a credentials path the SDK falls back to Application Default Credentials.
func NewApp(params AppParams) (*firebase.App, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if params.Config.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", params.Config.Firebase.ProjectID),
	)

	return app, nil
}

// NewFirestoreClient creates the Firestore client and closes it on shutdown.
func NewFirestoreClient(lc fx.Lifecycle, app *firebase.App) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
