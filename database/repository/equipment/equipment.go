package equipmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

type EquipmentRepository interface {
	List(ctx context.Context) ([]models.Equipment, error)
	Create(ctx context.Context, item *models.Equipment) error
	// StockByCategory resolves catalog rows to typed category keys.
	// Categories without a catalog row are absent from the map and
	// treated as unconstrained by the availability check.
	StockByCategory(ctx context.Context) (map[models.EquipmentCategory]int, error)
}

type mongoEquipmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEquipmentRepo constructs a MongoDB EquipmentRepository.
func NewMongoEquipmentRepo(db *mongo.Database) EquipmentRepository {
	return &mongoEquipmentRepo{
		coll: db.Collection("equipment"),
	}
}

func (r *mongoEquipmentRepo) List(ctx context.Context) ([]models.Equipment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Equipment
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoEquipmentRepo) Create(ctx context.Context, item *models.Equipment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *mongoEquipmentRepo) StockByCategory(ctx context.Context) (map[models.EquipmentCategory]int, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	stock := make(map[models.EquipmentCategory]int)
	for _, item := range items {
		if category, ok := models.CategoryForName(item.Name); ok {
			stock[category] = item.TotalStock
		}
	}
	return stock, nil
}
