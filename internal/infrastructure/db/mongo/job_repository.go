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

const jobCollection = "jobs"

type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobCollection)}
}

type mongoJob struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID       string             `bson:"company_id"`
	PostedBy        string             `bson:"posted_by"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	Location        string             `bson:"location,omitempty"`
	JobType         string             `bson:"job_type,omitempty"`
	ExperienceLevel string             `bson:"experience_level,omitempty"`
	SalaryMin       int                `bson:"salary_min,omitempty"`
	SalaryMax       int                `bson:"salary_max,omitempty"`
	CategoryID      string             `bson:"category_id,omitempty"`
	IndustryID      string             `bson:"industry_id,omitempty"`
	RequiredSkills  []string           `bson:"required_skills,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (r *MongoJobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	res, err := r.coll.InsertOne(ctx, jobToMongo(job))
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return jobToDomain(&mj), nil
}

func (r *MongoJobRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Job, error) {
	if len(ids) == 0 {
		return []domain.Job{}, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeJobs(ctx, cursor)
}

func (r *MongoJobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	doc := jobToMongo(job)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (r *MongoJobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *MongoJobRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeJobs(ctx, cursor)
}

func (r *MongoJobRepository) Search(ctx context.Context, q ports.JobSearch) ([]domain.Job, int64, error) {
	query := bson.M{"status": string(domain.JobPublished)}
	if q.Title != "" {
		query["title"] = bson.M{"$regex": q.Title, "$options": "i"}
	}
	if q.Location != "" {
		query["location"] = bson.M{"$regex": q.Location, "$options": "i"}
	}
	if q.JobType != "" {
		query["job_type"] = q.JobType
	}
	if q.ExperienceLevel != "" {
		query["experience_level"] = q.ExperienceLevel
	}
	if q.CategoryID != "" {
		query["category_id"] = q.CategoryID
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	page := ports.NewPage(total, q.Page, q.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs, err := decodeJobs(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *MongoJobRepository) CountByCompany(ctx context.Context, companyID string) (int64, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return 0, 0, fmt.Errorf("count jobs: %w", err)
	}
	published, err := r.coll.CountDocuments(ctx, bson.M{
		"company_id": companyID,
		"status":     string(domain.JobPublished),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("count published jobs: %w", err)
	}
	return total, published, nil
}

func (r *MongoJobRepository) CreatedSeries(ctx context.Context, from time.Time) ([]ports.DatePoint, error) {
	return dateSeries(ctx, r.coll, "created_at", from)
}

func (r *MongoJobRepository) TotalCount(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return total, nil
}

func (r *MongoJobRepository) TopCompanies(ctx context.Context, limit int) ([]ports.CompanyJobCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$company_id", "jobs": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"jobs": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$addFields", Value: bson.M{"company_oid": bson.M{"$toObjectId": "$_id"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         companyCollection,
			"localField":   "company_oid",
			"foreignField": "_id",
			"as":           "company",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$company", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top companies: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID      string `bson:"_id"`
		Jobs    int64  `bson:"jobs"`
		Company struct {
			Name string `bson:"name"`
		} `bson:"company"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top companies: %w", err)
	}

	out := make([]ports.CompanyJobCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.CompanyJobCount{
			CompanyID: row.ID,
			Name:      row.Company.Name,
			Jobs:      row.Jobs,
		})
	}
	return out, nil
}

func decodeJobs(ctx context.Context, cursor *mongo.Cursor) ([]domain.Job, error) {
	var docs []mongoJob
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, *jobToDomain(&docs[i]))
	}
	return jobs, nil
}

func jobToMongo(j *domain.Job) mongoJob {
	return mongoJob{
		CompanyID:       j.CompanyID,
		PostedBy:        j.PostedBy,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		CategoryID:      j.CategoryID,
		IndustryID:      j.IndustryID,
		RequiredSkills:  j.RequiredSkills,
		Status:          string(j.Status),
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func jobToDomain(mj *mongoJob) *domain.Job {
	return &domain.Job{
		ID:              mj.ID.Hex(),
		CompanyID:       mj.CompanyID,
		PostedBy:        mj.PostedBy,
		Title:           mj.Title,
		Description:     mj.Description,
		Location:        mj.Location,
		JobType:         mj.JobType,
		ExperienceLevel: mj.ExperienceLevel,
		SalaryMin:       mj.SalaryMin,
		SalaryMax:       mj.SalaryMax,
		CategoryID:      mj.CategoryID,
		IndustryID:      mj.IndustryID,
		RequiredSkills:  mj.RequiredSkills,
		Status:          domain.JobStatus(mj.Status),
		CreatedAt:       mj.CreatedAt,
		UpdatedAt:       mj.UpdatedAt,
	}
}
