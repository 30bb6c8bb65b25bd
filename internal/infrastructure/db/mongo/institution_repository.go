package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

const institutionsCollection = "institutions"

type InstitutionRepository struct {
	coll *mongo.Collection
}

func NewInstitutionRepository(db *mongo.Database) *InstitutionRepository {
	return &InstitutionRepository{coll: db.Collection(institutionsCollection)}
}

func (r *InstitutionRepository) Insert(ctx context.Context, inst *domain.Institution) (*domain.Institution, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *inst
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert institution: %w", err)
	}
	return &created, nil
}

func (r *InstitutionRepository) FindByID(ctx context.Context, id string) (*domain.Institution, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *InstitutionRepository) FindByName(ctx context.Context, name string) (*domain.Institution, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *InstitutionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Institution, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inst domain.Institution
	if err := r.coll.FindOne(ctx, filter).Decode(&inst); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("find institution: %w", err)
	}
	return &inst, nil
}

func (r *InstitutionRepository) List(ctx context.Context, skip, limit int) ([]*domain.Institution, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	defer cur.Close(ctx)

	var insts []*domain.Institution
	for cur.Next(ctx) {
		var inst domain.Institution
		if err := cur.Decode(&inst); err != nil {
			return nil, fmt.Errorf("decode institution: %w", err)
		}
		insts = append(insts, &inst)
	}
	return insts, cur.Err()
}

func (r *InstitutionRepository) Update(ctx context.Context, inst *domain.Institution) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": inst.ID}, inst)
	if err != nil {
		return fmt.Errorf("update institution: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInstitutionNotFound
	}
	return nil
}

func (r *InstitutionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete institution: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInstitutionNotFound
	}
	return nil
}
