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
)

const industryCollection = "industries"

type MongoIndustryRepository struct {
	coll *mongo.Collection
}

func NewIndustryRepository(db *mongo.Database) *MongoIndustryRepository {
	return &MongoIndustryRepository{coll: db.Collection(industryCollection)}
}

type mongoIndustry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Status       string             `bson:"status"`
	CompanyCount int64              `bson:"company_count,omitempty"`
	JobCount     int64              `bson:"job_count,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// List returns all industries with the number of companies and jobs filed
// under each, resolved through lookups against both collections.
func (r *MongoIndustryRepository) List(ctx context.Context) ([]domain.Industry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"id_str": bson.M{"$toString": "$_id"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         companyCollection,
			"localField":   "id_str",
			"foreignField": "industry_id",
			"as":           "companies",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         jobCollection,
			"localField":   "id_str",
			"foreignField": "industry_id",
			"as":           "jobs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"company_count": bson.M{"$size": "$companies"},
			"job_count":     bson.M{"$size": "$jobs"},
		}}},
		{{Key: "$project", Value: bson.M{"companies": 0, "jobs": 0, "id_str": 0}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoIndustry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode industries: %w", err)
	}

	industries := make([]domain.Industry, 0, len(docs))
	for i := range docs {
		industries = append(industries, *industryToDomain(&docs[i]))
	}
	return industries, nil
}

func (r *MongoIndustryRepository) Create(ctx context.Context, industry *domain.Industry) (*domain.Industry, error) {
	doc := mongoIndustry{
		Name:        industry.Name,
		Description: industry.Description,
		Status:      industry.Status,
		CreatedAt:   industry.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert industry: %w", err)
	}

	created := *industry
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoIndustryRepository) Update(ctx context.Context, industry *domain.Industry) (*domain.Industry, error) {
	oid, err := primitive.ObjectIDFromHex(industry.ID)
	if err != nil {
		return nil, domain.ErrIndustryNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        industry.Name,
		"description": industry.Description,
		"status":      industry.Status,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mi mongoIndustry
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIndustryNotFound
		}
		return nil, fmt.Errorf("update industry: %w", err)
	}
	return industryToDomain(&mi), nil
}

func (r *MongoIndustryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrIndustryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete industry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIndustryNotFound
	}
	return nil
}

func industryToDomain(mi *mongoIndustry) *domain.Industry {
	return &domain.Industry{
		ID:           mi.ID.Hex(),
		Name:         mi.Name,
		Description:  mi.Description,
		Status:       mi.Status,
		CompanyCount: mi.CompanyCount,
		JobCount:     mi.JobCount,
		CreatedAt:    mi.CreatedAt,
	}
}
