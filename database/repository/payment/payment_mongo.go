package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo is the MongoDB-backed PaymentRepository.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a repository bound to the payments collection.
func NewMongoPaymentRepo() *MongoPaymentRepo {
	return &MongoPaymentRepo{
		coll: database.Database().Collection("payments"),
	}
}

func (repo *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (repo *MongoPaymentRepo) GetByID(paymentID string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := repo.coll.FindOne(ctx, bson.M{"id": paymentID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	return &payment, nil
}

func (repo *MongoPaymentRepo) Complete(paymentID string, completedAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":      models.PaymentCompleted,
		"completedAt": completedAt,
		"updatedAt":   time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": paymentID}, update)
	if err != nil {
		return fmt.Errorf("failed to complete payment %s: %w", paymentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("payment %s not found", paymentID)
	}
	return nil
}

func (repo *MongoPaymentRepo) ListByCustomer(customerID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
