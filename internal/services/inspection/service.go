package inspection

import (
	"context"
	"errors"
	"fmt"

	"github.com/loongsen/qcrelay/internal/docstore"
	"github.com/loongsen/qcrelay/internal/models"
)

// ErrMissingJobOrder is returned when the payload has no usable job order reference
var ErrMissingJobOrder = errors.New("missing inspection data or job order")

// Service stores QC inspection submissions.
// Submissions are never deduplicated: the same job order may be inspected many times.
type Service struct {
	store      docstore.Store
	collection string
}

// NewService creates an inspection service writing into collection
func NewService(store docstore.Store, collection string) *Service {
	return &Service{store: store, collection: collection}
}

// Save validates the job order reference, stamps the payload with the server
// time and stores it. The caller's map is left untouched.
func (s *Service) Save(ctx context.Context, payload models.Inspection) (string, error) {
	if _, ok := payload.JobOrder(); !ok {
		return "", ErrMissingJobOrder
	}

	doc := payload.Clone()
	doc[models.ServerTimestampField] = s.store.ServerTimestamp()

	id, err := s.store.Create(ctx, s.collection, docstore.Document(doc))
	if err != nil {
		return "", fmt.Errorf("save inspection: %w", err)
	}
	return id, nil
}

// Get loads a stored inspection by id
func (s *Service) Get(ctx context.Context, id string) (models.Inspection, error) {
	doc, err := s.store.Get(ctx, s.collection, id)
	if err != nil {
		return nil, err
	}
	return models.Inspection(doc), nil
}
