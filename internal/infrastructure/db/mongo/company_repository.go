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

const companyCollection = "companies"

type MongoCompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *MongoCompanyRepository {
	return &MongoCompanyRepository{coll: db.Collection(companyCollection)}
}

// EnsureIndexes creates the unique owner index; a recruiter account owns at
// most one company profile.
func (r *MongoCompanyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create company indexes: %w", err)
	}
	return nil
}

type mongoCompany struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	IndustryID  string             `bson:"industry_id,omitempty"`
	Industry    string             `bson:"industry,omitempty"`
	Size        string             `bson:"size,omitempty"`
	Website     string             `bson:"website,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoCompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	doc := companyToMongo(company)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCompanyRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Company, error) {
	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return companyToDomain(&mc), nil
}

func (r *MongoCompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        company.Name,
		"industry_id": company.IndustryID,
		"industry":    company.Industry,
		"size":        company.Size,
		"website":     company.Website,
		"description": company.Description,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mc mongoCompany
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return companyToDomain(&mc), nil
}

func companyToMongo(c *domain.Company) *mongoCompany {
	return &mongoCompany{
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		IndustryID:  c.IndustryID,
		Industry:    c.Industry,
		Size:        c.Size,
		Website:     c.Website,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func companyToDomain(mc *mongoCompany) *domain.Company {
	return &domain.Company{
		ID:          mc.ID.Hex(),
		OwnerID:     mc.OwnerID,
		Name:        mc.Name,
		IndustryID:  mc.IndustryID,
		Industry:    mc.Industry,
		Size:        mc.Size,
		Website:     mc.Website,
		Description: mc.Description,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}
