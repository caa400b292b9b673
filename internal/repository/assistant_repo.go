package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a-team/clinic-booking-api/internal/models"
)

type AssistantRepo struct {
	col *mongo.Collection
}

func NewAssistantRepo(db *mongo.Database) *AssistantRepo {
	return &AssistantRepo{col: db.Collection("assistants")}
}

func (r *AssistantRepo) Create(ctx context.Context, assistant *models.Assistant) (*models.Assistant, error) {
	assistant.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, assistant); err != nil {
		return nil, fmt.Errorf("could not create this assistant: %w", err)
	}
	return assistant, nil
}

func (r *AssistantRepo) FindByEmail(ctx context.Context, email string) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&assistant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this assistant %s: %w", email, err)
	}
	return &assistant, nil
}

func (r *AssistantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(hidePassword)).Decode(&assistant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not show this assistant: %w", err)
	}
	return &assistant, nil
}

func (r *AssistantRepo) FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&assistant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this assistant: %w", err)
	}
	return &assistant, nil
}

func (r *AssistantRepo) List(ctx context.Context) ([]models.Assistant, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("could not find any assistants: %w", err)
	}
	defer cursor.Close(ctx)

	assistants := make([]models.Assistant, 0)
	if err := cursor.All(ctx, &assistants); err != nil {
		return nil, fmt.Errorf("could not find any assistants: %w", err)
	}
	return assistants, nil
}

func (r *AssistantRepo) ListByClinic(ctx context.Context, clinicID primitive.ObjectID) ([]models.Assistant, error) {
	cursor, err := r.col.Find(ctx, bson.M{"clinic": clinicID}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("could not show assistants of this clinic: %w", err)
	}
	defer cursor.Close(ctx)

	assistants := make([]models.Assistant, 0)
	if err := cursor.All(ctx, &assistants); err != nil {
		return nil, fmt.Errorf("could not show assistants of this clinic: %w", err)
	}
	return assistants, nil
}

func (r *AssistantRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(hidePassword),
	).Decode(&assistant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not update this assistant: %w", err)
	}
	return &assistant, nil
}

func (r *AssistantRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.Assistant, error) {
	return r.Update(ctx, id, bson.M{"password": hash})
}

func (r *AssistantRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("could not delete this assistant: %w", err)
	}
	return nil
}
