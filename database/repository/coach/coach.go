package coachRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

type CoachRepository interface {
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	List(ctx context.Context) ([]models.Coach, error)
	Create(ctx context.Context, coach *models.Coach) error
	ToggleAvailability(ctx context.Context, id string) (*models.Coach, error)
}

type mongoCoachRepo struct {
	coll *mongo.Collection
}

// NewMongoCoachRepo constructs a MongoDB CoachRepository.
func NewMongoCoachRepo(db *mongo.Database) CoachRepository {
	return &mongoCoachRepo{
		coll: db.Collection("coaches"),
	}
}

func (r *mongoCoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *mongoCoachRepo) List(ctx context.Context) ([]models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coaches []models.Coach
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *mongoCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if coach.ID == "" {
		coach.ID = uuid.New().String()
	}
	if coach.Sport == "" {
		coach.Sport = "badminton"
	}
	_, err := r.coll.InsertOne(ctx, coach)
	return err
}

// ToggleAvailability flips the administrative isAvailable flag and
// returns the updated coach.
func (r *mongoCoachRepo) ToggleAvailability(ctx context.Context, id string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coach, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"isAvailable": !coach.IsAvailable}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return nil, err
	}
	coach.IsAvailable = !coach.IsAvailable
	return coach, nil
}
