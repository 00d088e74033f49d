package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

const (
	DefaultMongoDatabase = "dashboard"
	SeedRunCollection    = "seed_runs"

	// codeNamespaceExists is returned by create on an existing collection.
	codeNamespaceExists = 48
)

// MongoStore keeps the record sets in a document database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// OpenMongo connects to uri and pings the primary. database overrides the
// name taken from the URI path.
func OpenMongo(ctx context.Context, uri, database string, l *zap.Logger) (*MongoStore, error) {
	if database == "" {
		database = databaseFromURI(uri, l)
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		l.Error("failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	s := &MongoStore{client: client, db: client.Database(database), logger: l}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		l.Error("failed to reach MongoDB", zap.String("database", database), zap.Error(err))
		return nil, err
	}

	l.Info("successfully connected to MongoDB", zap.String("database", database))
	return s, nil
}

func databaseFromURI(uri string, l *zap.Logger) string {
	u, err := url.Parse(uri)
	if err != nil {
		l.Warn("could not read database name from MongoDB URI, using default",
			zap.String("database", DefaultMongoDatabase), zap.Error(err))
		return DefaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultMongoDatabase
}

// Database exposes the selected database.
func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		return err
	}
	s.logger.Info("successfully disconnected from MongoDB")
	return nil
}

// Migrate creates each collection with a $jsonSchema validator and the
// unique indexes. Existing collections are reused as they are.
func (s *MongoStore) Migrate(ctx context.Context) error {
	for _, c := range collectionSchemas() {
		opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": c.schema})
		err := s.db.CreateCollection(ctx, c.name, opts)
		if err != nil && !isNamespaceExists(err) {
			return fmt.Errorf("error creating collection %s: %w", c.name, err)
		}

		for _, field := range c.unique {
			model := mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true),
			}
			if _, err := s.db.Collection(c.name).Indexes().CreateOne(ctx, model); err != nil {
				return fmt.Errorf("error creating unique index %s.%s: %w", c.name, field, err)
			}
		}
	}
	return nil
}

func isNamespaceExists(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeNamespaceExists)
}

func (s *MongoStore) insert(ctx context.Context, kind models.Kind, doc interface{}) error {
	_, err := s.db.Collection(string(kind)).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("error inserting into %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.insert(ctx, models.KindUser, newUserDocument(u))
}

func (s *MongoStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.insert(ctx, models.KindCustomer, newCustomerDocument(c))
}

func (s *MongoStore) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	return s.insert(ctx, models.KindInvoice, newInvoiceDocument(inv))
}

func (s *MongoStore) CreateRevenue(ctx context.Context, r *models.Revenue) error {
	return s.insert(ctx, models.KindRevenue, newRevenueDocument(r))
}

func (s *MongoStore) Count(ctx context.Context, kind models.Kind) (int64, error) {
	if _, err := modelFor(kind); err != nil {
		return 0, err
	}
	n, err := s.db.Collection(string(kind)).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error counting %s: %w", kind, err)
	}
	return n, nil
}

func (s *MongoStore) SaveSeedRun(ctx context.Context, run *models.SeedRun) error {
	doc, err := newSeedRunDocument(run)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(SeedRunCollection).ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error saving seed run: %w", err)
	}
	return nil
}

func (s *MongoStore) GetSeedRun(ctx context.Context, id uuid.UUID) (*models.SeedRun, error) {
	var doc seedRunDocument
	err := s.db.Collection(SeedRunCollection).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching seed run: %w", err)
	}
	return doc.model()
}
