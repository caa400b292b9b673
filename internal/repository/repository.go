package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hidePassword is applied to every list/show projection of a credentialed
// entity so no read path can leak the stored hash.
var hidePassword = bson.M{"password": 0}

// EnsureIndexes creates the unique and text indexes the collections rely on.
// Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{"clients", "clinics", "clinicadmins", "doctors", "assistants"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
			return fmt.Errorf("could not create email index on %s: %w", name, err)
		}
	}

	_, err := db.Collection("clients").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "confirmationCode", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return fmt.Errorf("could not create confirmationCode index: %w", err)
	}

	_, err = db.Collection("clinics").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}, {Key: "location.city", Value: "text"}},
	})
	if err != nil {
		return fmt.Errorf("could not create clinic text index: %w", err)
	}
	return nil
}
