package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DispatchLog records one delivered reminder message. Writes are best-effort
// and never read back by the service itself.
type DispatchLog struct {
	Receiver    string    `bson:"receiver"`
	ServiceDate string    `bson:"service_date"`
	Message     string    `bson:"message"`
	SentAt      time.Time `bson:"sent_at"`
}

// Repository defines the interface for dispatch audit storage.
type Repository interface {
	SaveDispatchLog(ctx context.Context, entry DispatchLog) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "dispatch_logs",
	}, nil
}

// SaveDispatchLog saves one audit entry to the database.
func (r *MongoDBRepository) SaveDispatchLog(ctx context.Context, entry DispatchLog) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	_, err := collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert dispatch log: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
