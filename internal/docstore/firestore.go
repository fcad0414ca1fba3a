package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore stores documents in Google Cloud Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a Firestore client authenticated with a service account file.
// An empty projectID is detected from the credential.
func NewFirestore(ctx context.Context, projectID, credentialsFile string, log *zap.Logger) (*Firestore, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	log.Info("Firestore client initialised", zap.String("credentials", credentialsFile))
	return &Firestore{client: client}, nil
}

// newFirestoreWithClient wraps an existing client, used against the emulator
func newFirestoreWithClient(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// Create adds doc with an auto-generated id
func (f *Firestore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, map[string]interface{}(doc))
	if err != nil {
		return "", fmt.Errorf("firestore add to %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Get reads a document by id
func (f *Firestore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}
	return Document(snap.Data()), nil
}

// ServerTimestamp is resolved by Firestore at commit time
func (f *Firestore) ServerTimestamp() interface{} {
	return firestore.ServerTimestamp
}

// Close releases the gRPC connection
func (f *Firestore) Close() error {
	return f.client.Close()
}
