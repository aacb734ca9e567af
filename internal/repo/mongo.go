package repo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

// Connect establishes a shared client. All repos built on the same
// client take part in the same session transactions.
func Connect(ctx context.Context, cfg MongoConfig, log logger.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetMinPoolSize(cfg.Pool.MinSize).
		SetMaxPoolSize(cfg.Pool.MaxSize)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	return &Client{
		c:   client,
		db:  client.Database(cfg.Database),
		log: log.With("mongo_client"),
	}, nil
}

type Client struct {
	c   *mongo.Client
	db  *mongo.Database
	log logger.Logger
}

// Txn runs do in a causally consistent session transaction. Writes
// made through repos of this client with the inner ctx are atomic,
// so a conflict check and the booking that depends on it cannot
// interleave with a concurrent booking for the same candidate.
func (c *Client) Txn(ctx context.Context, do func(ctx context.Context) error) error {
	sess, err := c.c.StartSession(options.Session().SetCausalConsistency(true))
	if err != nil {
		return errors.WrapFail(err, "start mongo session")
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, do(sc)
	})
	return errors.WrapFail(err, "run mongo transaction")
}

func (c *Client) Close(ctx context.Context) error {
	return errors.WrapFail(c.c.Disconnect(ctx), "close mongo db connection")
}

// New builds a typed repo over one collection of the shared client.
func New[T any](c *Client, collection string) Repo[T] {
	return &mongoRepo[T]{
		coll: c.db.Collection(collection),
		log:  c.log.With(collection),
	}
}

type mongoRepo[T any] struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoRepo[T]) Insert(ctx context.Context, data T) (string, error) {
	doc, err := toDoc(data)
	if err != nil {
		return "", errors.WrapFail(err, "encode document")
	}

	id, _ := doc["_id"].(string)
	if id == "" {
		id = uuid.New().String()
		doc["_id"] = id
	}

	_, err = m.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", errors.WrapFail(err, "insert document")
	}

	return id, nil
}

func (m *mongoRepo[T]) Select(ctx context.Context, filters ...Filter) ([]T, error) {
	f := apply(filters)

	cur, err := m.coll.Find(ctx, f.query())
	if err != nil {
		return nil, errors.WrapFail(err, "find documents")
	}

	defer func() {
		closeErr := cur.Close(ctx)
		if closeErr != nil {
			m.log.Warn(errors.WrapFail(closeErr, "close cursor"))
		}
	}()

	var selected []T
	for cur.Next(ctx) {
		var item T
		err = cur.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode document")
		}
		if f.fn != nil && !f.fn(item) {
			continue
		}
		selected = append(selected, item)
	}

	return selected, errors.WrapFail(cur.Err(), "iterate cursor")
}

func (m *mongoRepo[T]) Update(ctx context.Context, mutate func(*T), filters ...Filter) error {
	f := apply(filters)

	cur, err := m.coll.Find(ctx, f.query())
	if err != nil {
		return errors.WrapFail(err, "find documents to update")
	}
	defer func() { _ = cur.Close(ctx) }()

	for cur.Next(ctx) {
		id := cur.Current.Lookup("_id").StringValue()

		var item T
		err = cur.Decode(&item)
		if err != nil {
			return errors.WrapFail(err, "decode document")
		}

		if f.fn != nil && !f.fn(item) {
			continue
		}

		mutate(&item)

		doc, err := toDoc(item)
		if err != nil {
			return errors.WrapFail(err, "encode updated document")
		}
		doc["_id"] = id

		_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
		if err != nil {
			return errors.WrapFail(err, "replace document")
		}
	}

	return errors.WrapFail(cur.Err(), "iterate cursor")
}

func (m *mongoRepo[T]) Delete(ctx context.Context, id string) (bool, error) {
	result, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.WrapFail(err, "delete document")
	}

	return result.DeletedCount == 1, nil
}

func (f filter) query() bson.M {
	q := bson.M{}
	if f.id != nil {
		q["_id"] = *f.id
	}
	if f.exclude != nil {
		q["_id"] = bson.M{"$ne": *f.exclude}
	}
	for name, value := range f.fields {
		q[name] = value
	}
	return q
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = bson.Unmarshal(raw, &doc)
	return doc, err
}
