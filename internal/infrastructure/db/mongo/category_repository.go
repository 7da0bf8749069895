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

const categoryCollection = "categories"

type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	JobCount    int64              `bson:"job_count,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// List returns all categories with the number of jobs currently filed under
// each, resolved through a lookup against the jobs collection.
func (r *MongoCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"id_str": bson.M{"$toString": "$_id"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         jobCollection,
			"localField":   "id_str",
			"foreignField": "category_id",
			"as":           "jobs",
		}}},
		{{Key: "$addFields", Value: bson.M{"job_count": bson.M{"$size": "$jobs"}}}},
		{{Key: "$project", Value: bson.M{"jobs": 0, "id_str": 0}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCategory
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(docs))
	for i := range docs {
		categories = append(categories, *categoryToDomain(&docs[i]))
	}
	return categories, nil
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	doc := mongoCategory{
		Name:        category.Name,
		Description: category.Description,
		Status:      category.Status,
		CreatedAt:   category.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"description": category.Description,
		"status":      category.Status,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mc mongoCategory
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return categoryToDomain(&mc), nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func categoryToDomain(mc *mongoCategory) *domain.Category {
	return &domain.Category{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		Status:      mc.Status,
		JobCount:    mc.JobCount,
		CreatedAt:   mc.CreatedAt,
	}
}
