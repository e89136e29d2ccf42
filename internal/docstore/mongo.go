package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withoutObjectID hides Mongo's internal _id from every read.
var withoutObjectID = bson.M{"_id": 0}

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger zerolog.Logger
}

// NewMongoStore connects to MongoDB at uri and returns a Store over the
// named database.
func NewMongoStore(ctx context.Context, uri, database string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("store", "mongo").Logger()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Str("database", database).Msg("mongo client connected")

	return &mongoStore{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

func (s *mongoStore) Collection(name string) Collection {
	if !knownCollection(name) {
		return invalidCollection{name: name}
	}
	return &mongoCollection{
		coll:   s.db.Collection(name),
		logger: s.logger.With().Str("collection", name).Logger(),
	}
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *mongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	s.logger.Info().Msg("mongo client disconnected")
	return nil
}

type mongoCollection struct {
	coll   *mongo.Collection
	logger zerolog.Logger
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, limit int) ([]Document, error) {
	opts := options.Find().
		SetProjection(withoutObjectID).
		SetLimit(int64(limit))

	cur, err := c.coll.Find(ctx, toBSON(filter), opts)
	if err != nil {
		c.logger.Error().Err(err).Int("limit", limit).Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}

	var found []bson.M
	if err := cur.All(ctx, &found); err != nil {
		c.logger.Error().Err(err).Msg("failed to decode documents")
		return nil, fmt.Errorf("failed to decode %s: %w", c.coll.Name(), err)
	}

	docs := make([]Document, 0, len(found))
	for _, m := range found {
		docs = append(docs, Document(m))
	}
	return docs, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	opts := options.FindOne().SetProjection(withoutObjectID)

	var m bson.M
	err := c.coll.FindOne(ctx, toBSON(filter), opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		c.logger.Error().Err(err).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}

	return Document(m), nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc Document) error {
	id, err := documentID(doc)
	if err != nil {
		return err
	}

	if _, err := c.coll.InsertOne(ctx, bson.M(doc)); err != nil {
		c.logger.Error().Err(err).Str("id", id).Msg("failed to insert document")
		return fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter Filter, set Document) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, toBSON(filter), bson.M{"$set": bson.M(set)})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to update document")
		return 0, fmt.Errorf("failed to update %s: %w", c.coll.Name(), err)
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to delete document")
		return 0, fmt.Errorf("failed to delete from %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

func toBSON(f Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}
