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

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

const categoriesCollection = "categories"

// CategoryRepository persists categories in MongoDB.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection)}
}

type mongoCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mc *mongoCategory) toDomain() *domain.Category {
	return &domain.Category{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCategory{
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []*domain.Category
	for cur.Next(ctx) {
		var mc mongoCategory
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, mc.toDomain())
	}
	return categories, cur.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"description": category.Description,
		"updated_at":  category.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
