package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/loongsen/qcrelay/internal/config"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when no document has the requested id
var ErrNotFound = errors.New("document not found")

// Document is a schema-less record
type Document map[string]interface{}

// Store is a document database that assigns ids on insert
type Store interface {
	// Create appends doc to collection and returns the generated id
	Create(ctx context.Context, collection string, doc Document) (string, error)
	// Get loads a document by id
	Get(ctx context.Context, collection, id string) (Document, error)
	// ServerTimestamp returns the value to store for a server-assigned creation time
	ServerTimestamp() interface{}
	Close() error
}

// Open connects the configured backend
func Open(ctx context.Context, cfg config.DocStoreConfig, log *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendFirestore:
		return NewFirestore(ctx, cfg.ProjectID, cfg.CredentialsFile, log)
	case config.BackendMongo:
		return NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	default:
		return nil, fmt.Errorf("unsupported document store backend %q", cfg.Backend)
	}
}
