package docstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/loongsen/qcrelay/internal/config"
	"go.uber.org/zap"
)

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.DocStoreConfig{Backend: "dynamo"}, zap.NewNop())
	if err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestFirestoreMissingCredentials(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") != "" {
		t.Skip("emulator ignores credentials")
	}
	_, err := NewFirestore(context.Background(), "", "/nonexistent/firebase-credentials.json", zap.NewNop())
	if err == nil {
		t.Error("Expected error for missing credential file")
	}
}

// roundTrip exercises the contract every backend must honour
func roundTrip(t *testing.T, s Store, collection string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc := Document{"jobOrder": "LOT1", "foo": "bar", "ts": s.ServerTimestamp()}
	id1, err := s.Create(ctx, collection, doc)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id2, err := s.Create(ctx, collection, Document{"jobOrder": "LOT1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Fatalf("Expected distinct non-empty ids, got %q and %q", id1, id2)
	}

	got, err := s.Get(ctx, collection, id1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["foo"] != "bar" || got["jobOrder"] != "LOT1" {
		t.Errorf("Unexpected document: %v", got)
	}
	if _, ok := got["ts"]; !ok {
		t.Error("Expected server timestamp to be stored")
	}

	if _, err := s.Get(ctx, collection, "000000000000000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "qcrelay-test")
	if err != nil {
		t.Fatalf("Failed to create emulator client: %v", err)
	}
	s := newFirestoreWithClient(client)
	defer s.Close()

	roundTrip(t, s, "inspections_test")
}

func TestMongo(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	s, err := NewMongo(context.Background(), uri, "qcrelay_test", zap.NewNop())
	if err != nil {
		t.Fatalf("NewMongo failed: %v", err)
	}
	defer s.Close()

	roundTrip(t, s, "inspections_test")

	if _, err := s.Get(context.Background(), "inspections_test", "not-hex"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for malformed id, got %v", err)
	}
}
