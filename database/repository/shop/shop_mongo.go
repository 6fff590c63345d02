package shopRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoShopRepo is the MongoDB-backed ShopRepository.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo returns a repository bound to the shops collection.
func NewMongoShopRepo() *MongoShopRepo {
	return &MongoShopRepo{
		coll: database.Database().Collection("shops"),
	}
}

func (repo *MongoShopRepo) GetByID(shopID string) (*models.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shop models.Shop
	err := repo.coll.FindOne(ctx, bson.M{"id": shopID}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shop %s: %w", shopID, err)
	}
	return &shop, nil
}

// IncrementQueue bumps the queue length atomically and sets the advertised
// wait time. Concurrent creates against the same shop both land their
// increments; the counter is advisory, not a capacity gate.
func (repo *MongoShopRepo) IncrementQueue(shopID string, estimatedWaitTime int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"currentQueueLength": 1},
		"$set": bson.M{
			"estimatedWaitTime": estimatedWaitTime,
			"updatedAt":         time.Now().UTC(),
		},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": shopID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment queue for shop %s: %w", shopID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("shop %s not found", shopID)
	}
	return nil
}

// DecrementQueue drops the queue length by one, floored at zero. Uses an
// aggregation-pipeline update so the floor and the decrement are one atomic
// document write.
func (repo *MongoShopRepo) DecrementQueue(shopID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "currentQueueLength", Value: bson.D{
				{Key: "$max", Value: bson.A{
					0,
					bson.D{{Key: "$subtract", Value: bson.A{"$currentQueueLength", 1}}},
				}},
			}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": shopID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to decrement queue for shop %s: %w", shopID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("shop %s not found", shopID)
	}
	return nil
}
