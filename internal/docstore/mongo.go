package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Mongo stores documents in a MongoDB database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to MongoDB and selects the database
func NewMongo(ctx context.Context, uri, database string, log *zap.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	log.Info("MongoDB client initialised", zap.String("database", database))
	return &Mongo{client: client, db: client.Database(database)}, nil
}

// Create inserts doc and returns the generated ObjectID as hex
func (m *Mongo) Create(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("mongo insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongo insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Get loads a document by its hex ObjectID. Malformed ids are reported as not found.
func (m *Mongo) Get(ctx context.Context, collection, id string) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc bson.M
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find %s/%s: %w", collection, id, err)
	}
	delete(doc, "_id")
	return Document(doc), nil
}

// ServerTimestamp is the relay's UTC wall clock; MongoDB has no insert-time sentinel
func (m *Mongo) ServerTimestamp() interface{} {
	return time.Now().UTC()
}

// Close disconnects the client
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
