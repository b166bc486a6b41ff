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
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

const assetsCollection = "assets"

// AssetRepository persists assets in MongoDB and runs the aggregation
// pipelines behind the reports. Serial-number uniqueness is enforced by a
// unique index (see EnsureIndexes).
type AssetRepository struct {
	coll *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{coll: db.Collection(assetsCollection)}
}

type mongoAsset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	AssetName    string             `bson:"asset_name"`
	AssetType    string             `bson:"asset_type"`
	SerialNumber string             `bson:"serial_number"`
	Brand        string             `bson:"brand"`
	Model        string             `bson:"model"`
	PurchaseDate time.Time          `bson:"purchase_date"`
	Condition    string             `bson:"condition"`
	Status       string             `bson:"status"`
	AssignedTo   *string            `bson:"assigned_to,omitempty"`
	Location     *string            `bson:"location,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func fromDomainAsset(a *domain.Asset) mongoAsset {
	return mongoAsset{
		AssetName:    a.AssetName,
		AssetType:    a.AssetType,
		SerialNumber: a.SerialNumber,
		Brand:        a.Brand,
		Model:        a.Model,
		PurchaseDate: a.PurchaseDate,
		Condition:    a.Condition,
		Status:       a.Status,
		AssignedTo:   a.AssignedTo,
		Location:     a.Location,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (ma *mongoAsset) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:           ma.ID.Hex(),
		AssetName:    ma.AssetName,
		AssetType:    ma.AssetType,
		SerialNumber: ma.SerialNumber,
		Brand:        ma.Brand,
		Model:        ma.Model,
		PurchaseDate: ma.PurchaseDate,
		Condition:    ma.Condition,
		Status:       ma.Status,
		AssignedTo:   ma.AssignedTo,
		Location:     ma.Location,
		CreatedAt:    ma.CreatedAt,
		UpdatedAt:    ma.UpdatedAt,
	}
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainAsset(asset))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSerial
		}
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	created := *asset
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAsset
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAssets(ctx, cur)
}

// Replace overwrites the stored document with asset, matched by id.
// Last-writer-wins: there is no version check on concurrent updates.
func (r *AssetRepository) Replace(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(asset.ID)
	if err != nil {
		return nil, domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainAsset(asset)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSerial
		}
		return nil, fmt.Errorf("replace asset: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAssetNotFound
	}
	return asset, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

type groupRow struct {
	ID    *string `bson:"_id"`
	Count int64   `bson:"count"`
}

func (r *AssetRepository) GroupByType(ctx context.Context) ([]ports.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$asset_type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	return r.aggregateGroups(ctx, pipeline)
}

func (r *AssetRepository) GroupByLocation(ctx context.Context) ([]ports.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$location", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	return r.aggregateGroups(ctx, pipeline)
}

func (r *AssetRepository) FindByStatus(ctx context.Context, status string) ([]*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("find assets by status: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAssets(ctx, cur)
}

// AvailableByTypeBelow groups Available assets by type, keeping only groups
// whose count is below threshold.
func (r *AssetRepository) AvailableByTypeBelow(ctx context.Context, threshold int64) ([]ports.GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": domain.StatusAvailable}}},
		{{Key: "$group", Value: bson.M{"_id": "$asset_type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$lt": threshold}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	return r.aggregateGroups(ctx, pipeline)
}

func (r *AssetRepository) aggregateGroups(ctx context.Context, pipeline mongo.Pipeline) ([]ports.GroupCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate assets: %w", err)
	}
	defer cur.Close(ctx)

	var groups []ports.GroupCount
	for cur.Next(ctx) {
		var row groupRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode group row: %w", err)
		}
		key := ""
		if row.ID != nil {
			key = *row.ID
		}
		groups = append(groups, ports.GroupCount{Key: key, Count: row.Count})
	}
	return groups, cur.Err()
}

func decodeAssets(ctx context.Context, cur *mongo.Cursor) ([]*domain.Asset, error) {
	var assets []*domain.Asset
	for cur.Next(ctx) {
		var ma mongoAsset
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		assets = append(assets, ma.toDomain())
	}
	return assets, cur.Err()
}

// EnsureIndexes creates the unique serial-number index plus the lookup
// indexes the reports rely on. Run once at startup.
func (r *AssetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "serial_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "asset_type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
