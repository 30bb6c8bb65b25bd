package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository persists the security audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *entry
	stored.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &stored); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, skip, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AuditEntry
	for cur.Next(ctx) {
		var e domain.AuditEntry
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, cur.Err()
}
