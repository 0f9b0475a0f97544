package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/tilegrid/pkg/grid"
)

// DefaultCollection is the MongoDB collection layouts are stored in.
const DefaultCollection = "layouts"

// MongoOptions configures a MongoDB-backed store.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	TTL        time.Duration
}

// MongoStore stores layouts as documents. Expiry is enforced by a TTL index
// on expires_at and re-checked on read, since the TTL monitor runs only
// about once a minute.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	ttl    time.Duration
}

// NewMongoStore connects to MongoDB, pings the primary and ensures the TTL
// index exists.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.Database == "" {
		opts.Database = "tilegrid"
	}
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
		ttl:    opts.TTL,
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetSparse(true),
	})
	if err != nil {
		return fmt.Errorf("create ttl index: %w", err)
	}
	return nil
}

func (s *MongoStore) Save(ctx context.Context, l grid.Layout) (grid.Layout, error) {
	if l.ID != "" {
		if err := ValidateID(l.ID); err != nil {
			return grid.Layout{}, err
		}
	}
	r := newRecord(l, s.ttl)
	r.Layout.ID = r.ID

	doc := bson.M{
		"_id":        r.ID,
		"layout":     r.Layout,
		"created_at": r.CreatedAt,
	}
	if !r.ExpiresAt.IsZero() {
		doc["expires_at"] = r.ExpiresAt
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": r.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return grid.Layout{}, fmt.Errorf("save layout: %w", err)
	}
	return r.Layout, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (grid.Layout, error) {
	var r record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return grid.Layout{}, notFound(id)
	}
	if err != nil {
		return grid.Layout{}, fmt.Errorf("find layout: %w", err)
	}
	if r.expired(time.Now()) {
		return grid.Layout{}, notFound(id)
	}
	return r.Layout, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}

func (s *MongoStore) Cleanup(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now().UTC()}})
	return err
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
