package rulesRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtbook/models"
)

type PricingRuleRepository interface {
	ListActive(ctx context.Context) ([]models.PricingRule, error)
	Create(ctx context.Context, rule *models.PricingRule) error
}

type mongoPricingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo constructs a MongoDB PricingRuleRepository.
func NewMongoPricingRuleRepo(db *mongo.Database) PricingRuleRepository {
	return &mongoPricingRuleRepo{
		coll: db.Collection("pricing_rules"),
	}
}

func (r *mongoPricingRuleRepo) ListActive(ctx context.Context) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoPricingRuleRepo) Create(ctx context.Context, rule *models.PricingRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, rule)
	return err
}
