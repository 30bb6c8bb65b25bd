package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

const studentsCollection = "students"

type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentsCollection)}
}

func (r *StudentRepository) Insert(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *st
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var st domain.Student
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &st, nil
}

func (r *StudentRepository) List(ctx context.Context, skip, limit int, institutionID string) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if institutionID != "" {
		filter["institution_id"] = institutionID
	}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	var students []*domain.Student
	for cur.Next(ctx) {
		var st domain.Student
		if err := cur.Decode(&st); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, &st)
	}
	return students, cur.Err()
}

func (r *StudentRepository) Update(ctx context.Context, st *domain.Student) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": st.ID}, st)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// EnsureIndexes creates lookup indexes for institution filtering.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "institution_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
