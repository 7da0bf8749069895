package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentboard/job-board-api/internal/core/domain"
)

const savedJobCollection = "saved_jobs"

type MongoSavedJobRepository struct {
	coll *mongo.Collection
}

func NewSavedJobRepository(db *mongo.Database) *MongoSavedJobRepository {
	return &MongoSavedJobRepository{coll: db.Collection(savedJobCollection)}
}

// EnsureIndexes creates the unique (seeker_id, job_id) index so a job can be
// bookmarked once per seeker.
func (r *MongoSavedJobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "seeker_id", Value: 1}, {Key: "job_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create saved job indexes: %w", err)
	}
	return nil
}

type mongoSavedJob struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	SeekerID string             `bson:"seeker_id"`
	JobID    string             `bson:"job_id"`
	SavedAt  time.Time          `bson:"saved_at"`
}

func (r *MongoSavedJobRepository) Save(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	doc := mongoSavedJob{
		SeekerID: seekerID,
		JobID:    jobID,
		SavedAt:  time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrJobAlreadySaved
		}
		return nil, fmt.Errorf("insert saved job: %w", err)
	}

	return &domain.SavedJob{
		ID:       res.InsertedID.(primitive.ObjectID).Hex(),
		SeekerID: seekerID,
		JobID:    jobID,
		SavedAt:  doc.SavedAt,
	}, nil
}

func (r *MongoSavedJobRepository) Remove(ctx context.Context, seekerID, jobID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"seeker_id": seekerID, "job_id": jobID})
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *MongoSavedJobRepository) ListBySeeker(ctx context.Context, seekerID string) ([]domain.SavedJob, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"seeker_id": seekerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoSavedJob
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode saved jobs: %w", err)
	}

	saved := make([]domain.SavedJob, 0, len(docs))
	for _, doc := range docs {
		saved = append(saved, domain.SavedJob{
			ID:       doc.ID.Hex(),
			SeekerID: doc.SeekerID,
			JobID:    doc.JobID,
			SavedAt:  doc.SavedAt,
		})
	}
	return saved, nil
}

func (r *MongoSavedJobRepository) CountBySeeker(ctx context.Context, seekerID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"seeker_id": seekerID})
	if err != nil {
		return 0, fmt.Errorf("count saved jobs: %w", err)
	}
	return count, nil
}
