package store

import (
	"context"
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalio/triage-api/schema"
)

var (
	ErrProviderNotFound = fmt.Errorf("provider not found")
	ErrProviderExists   = fmt.Errorf("provider already exists")
)

// ProviderStore - repository of care providers. Query applies availability
// and case-insensitive specialty substring filtering; distance filtering
// and ranking belong to the matcher.
type ProviderStore interface {
	Query(ctx context.Context, specialty string, availableOnly bool) ([]schema.ProviderRecord, error)
	AddProvider(ctx context.Context, provider schema.ProviderRecord) error
	UpdateProviderAvailability(ctx context.Context, providerID string, available bool) error
	SeedProviders(ctx context.Context) error
}

// Query returns provider candidates in repository order.
func (m *mongoDB) Query(ctx context.Context, specialty string, availableOnly bool) ([]schema.ProviderRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	query := bson.M{}
	if availableOnly {
		query["availability"] = true
	}
	if specialty != "" {
		query["specialty"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(specialty),
			Options: "i",
		}
	}

	cursor, err := c.Find(ctx, query)
	if nil != err {
		return nil, err
	}

	providers := []schema.ProviderRecord{}
	if err := cursor.All(ctx, &providers); nil != err {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":    mongoLogPrefix,
		"specialty": specialty,
		"count":     len(providers),
	}).Debug("queried providers")

	return providers, nil
}

// AddProvider inserts a new provider record.
func (m *mongoDB) AddProvider(ctx context.Context, provider schema.ProviderRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	if _, err := c.InsertOne(ctx, provider); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == 11000 {
					return ErrProviderExists
				}
			}
		}
		return err
	}

	return nil
}

// UpdateProviderAvailability flips the availability flag of a provider.
func (m *mongoDB) UpdateProviderAvailability(ctx context.Context, providerID string, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"provider_id": providerID},
		bson.M{"$set": bson.M{"availability": available}})
	if nil != err {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProviderNotFound
	}

	return nil
}

// SeedProviders populates the collection with the sample catalog when it
// is empty, mirroring a fresh deployment.
func (m *mongoDB) SeedProviders(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProviderCollection)

	count, err := c.CountDocuments(ctx, bson.M{})
	if nil != err {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(sampleProviders))
	for _, p := range sampleProviders {
		docs = append(docs, p)
	}

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"count":  len(sampleProviders),
	}).Info("seeded sample providers")

	return nil
}
