package courtRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

type CourtRepository interface {
	GetByID(ctx context.Context, id string) (*models.Court, error)
	List(ctx context.Context) ([]models.Court, error)
	Create(ctx context.Context, court *models.Court) error
}

type mongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo constructs a MongoDB CourtRepository.
func NewMongoCourtRepo(db *mongo.Database) CourtRepository {
	return &mongoCourtRepo{
		coll: db.Collection("courts"),
	}
}

func (r *mongoCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *mongoCourtRepo) List(ctx context.Context) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *mongoCourtRepo) Create(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if court.ID == "" {
		court.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, court)
	return err
}
