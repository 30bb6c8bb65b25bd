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

const scoresCollection = "scores"

type ScoreRepository struct {
	coll *mongo.Collection
}

func NewScoreRepository(db *mongo.Database) *ScoreRepository {
	return &ScoreRepository{coll: db.Collection(scoresCollection)}
}

func (r *ScoreRepository) Insert(ctx context.Context, sc *domain.Score) (*domain.Score, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *sc
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert score: %w", err)
	}
	return &created, nil
}

func (r *ScoreRepository) FindByID(ctx context.Context, id string) (*domain.Score, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var sc domain.Score
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScoreNotFound
		}
		return nil, fmt.Errorf("find score: %w", err)
	}
	return &sc, nil
}

func (r *ScoreRepository) List(ctx context.Context, skip, limit int, studentID string) ([]*domain.Score, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if studentID != "" {
		filter["student_id"] = studentID
	}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer cur.Close(ctx)

	var scores []*domain.Score
	for cur.Next(ctx) {
		var sc domain.Score
		if err := cur.Decode(&sc); err != nil {
			return nil, fmt.Errorf("decode score: %w", err)
		}
		scores = append(scores, &sc)
	}
	return scores, cur.Err()
}

func (r *ScoreRepository) Update(ctx context.Context, sc *domain.Score) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": sc.ID}, sc)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}

func (r *ScoreRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete score: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}
