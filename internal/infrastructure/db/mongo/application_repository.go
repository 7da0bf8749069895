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

	"github.com/talentboard/job-board-api/internal/core/domain"
	"github.com/talentboard/job-board-api/internal/core/ports"
)

const applicationCollection = "applications"

type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationCollection)}
}

// EnsureIndexes creates the unique (job_id, seeker_id) index that enforces
// one application per seeker per job.
func (r *MongoApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "seeker_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create application indexes: %w", err)
	}
	return nil
}

type mongoApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id"`
	SeekerID    string             `bson:"seeker_id"`
	CoverLetter string             `bson:"cover_letter,omitempty"`
	Status      string             `bson:"status"`
	AppliedAt   time.Time          `bson:"applied_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := mongoApplication{
		JobID:       app.JobID,
		SeekerID:    app.SeekerID,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		AppliedAt:   app.AppliedAt,
		UpdatedAt:   app.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return applicationToDomain(&ma), nil
}

func (r *MongoApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ma mongoApplication
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return applicationToDomain(&ma), nil
}

func (r *MongoApplicationRepository) ListBySeeker(ctx context.Context, seekerID string, page, limit int) ([]domain.Application, int64, error) {
	return r.list(ctx, bson.M{"seeker_id": seekerID}, page, limit)
}

func (r *MongoApplicationRepository) ListByJobs(ctx context.Context, jobIDs []string, page, limit int) ([]domain.Application, int64, error) {
	if len(jobIDs) == 0 {
		return []domain.Application{}, 0, nil
	}
	return r.list(ctx, bson.M{"job_id": bson.M{"$in": jobIDs}}, page, limit)
}

func (r *MongoApplicationRepository) list(ctx context.Context, query bson.M, page, limit int) ([]domain.Application, int64, error) {
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	p := ports.NewPage(total, page, limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}).
		SetSkip(int64(p.Offset())).
		SetLimit(int64(p.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoApplication
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode applications: %w", err)
	}

	apps := make([]domain.Application, 0, len(docs))
	for i := range docs {
		apps = append(apps, *applicationToDomain(&docs[i]))
	}
	return apps, total, nil
}

func (r *MongoApplicationRepository) CountBySeeker(ctx context.Context, seekerID string) ([]ports.StatusCount, error) {
	return r.countByStatus(ctx, bson.M{"seeker_id": seekerID})
}

func (r *MongoApplicationRepository) CountByJobs(ctx context.Context, jobIDs []string) ([]ports.StatusCount, error) {
	if len(jobIDs) == 0 {
		return []ports.StatusCount{}, nil
	}
	return r.countByStatus(ctx, bson.M{"job_id": bson.M{"$in": jobIDs}})
}

func (r *MongoApplicationRepository) countByStatus(ctx context.Context, match bson.M) ([]ports.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode status counts: %w", err)
	}

	counts := make([]ports.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ports.StatusCount{
			Status: domain.ApplicationStatus(row.ID),
			Count:  row.Count,
		})
	}
	return counts, nil
}

func (r *MongoApplicationRepository) AppliedSeries(ctx context.Context, from time.Time) ([]ports.DatePoint, error) {
	return dateSeries(ctx, r.coll, "applied_at", from)
}

func (r *MongoApplicationRepository) TotalCount(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return total, nil
}

func applicationToDomain(ma *mongoApplication) *domain.Application {
	return &domain.Application{
		ID:          ma.ID.Hex(),
		JobID:       ma.JobID,
		SeekerID:    ma.SeekerID,
		CoverLetter: ma.CoverLetter,
		Status:      domain.ApplicationStatus(ma.Status),
		AppliedAt:   ma.AppliedAt,
		UpdatedAt:   ma.UpdatedAt,
	}
}
