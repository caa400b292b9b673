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

type ClinicRepo struct {
	col *mongo.Collection
}

func NewClinicRepo(db *mongo.Database) *ClinicRepo {
	return &ClinicRepo{col: db.Collection("clinics")}
}

func (r *ClinicRepo) Create(ctx context.Context, clinic *models.Clinic) (*models.Clinic, error) {
	clinic.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, clinic); err != nil {
		return nil, fmt.Errorf("could not create this clinic: %w", err)
	}
	return clinic, nil
}

func (r *ClinicRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&clinic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not show this clinic: %w", err)
	}
	return &clinic, nil
}

func (r *ClinicRepo) FindByEmail(ctx context.Context, email string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&clinic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this clinic %s: %w", email, err)
	}
	return &clinic, nil
}

func (r *ClinicRepo) List(ctx context.Context) ([]models.Clinic, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not find any clinics: %w", err)
	}
	defer cursor.Close(ctx)

	clinics := make([]models.Clinic, 0)
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, fmt.Errorf("could not find any clinics: %w", err)
	}
	return clinics, nil
}

func (r *ClinicRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&clinic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not update this clinic: %w", err)
	}
	return &clinic, nil
}

func (r *ClinicRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("could not delete this clinic: %w", err)
	}
	return nil
}

// Search runs the text index over clinic name and city.
func (r *ClinicRepo) Search(ctx context.Context, text string) ([]models.Clinic, error) {
	cursor, err := r.col.Find(ctx, bson.M{"$text": bson.M{"$search": text}})
	if err != nil {
		return nil, fmt.Errorf("could not search clinics: %w", err)
	}
	defer cursor.Close(ctx)

	clinics := make([]models.Clinic, 0)
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, fmt.Errorf("could not search clinics: %w", err)
	}
	return clinics, nil
}

// FindByAdmin returns the clinic a clinic admin owns. The ownership is not
// unique in the data model; the first match wins, as in the original system.
func (r *ClinicRepo) FindByAdmin(ctx context.Context, adminID primitive.ObjectID) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.col.FindOne(ctx, bson.M{"clinicAdmin": adminID}).Decode(&clinic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this admin's clinic: %w", err)
	}
	return &clinic, nil
}
