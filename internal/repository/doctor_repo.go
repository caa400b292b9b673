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

type DoctorRepo struct {
	col *mongo.Collection
}

func NewDoctorRepo(db *mongo.Database) *DoctorRepo {
	return &DoctorRepo{col: db.Collection("doctors")}
}

func (r *DoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	doctor.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doctor); err != nil {
		return nil, fmt.Errorf("could not create this doctor: %w", err)
	}
	return doctor, nil
}

func (r *DoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this doctor %s: %w", email, err)
	}
	return &doctor, nil
}

func (r *DoctorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(hidePassword)).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not show this doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepo) FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("could not find any doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("could not find any doctors: %w", err)
	}
	return doctors, nil
}

// ListByClinic returns the name/image directory projection of a clinic's
// doctors.
func (r *DoctorRepo) ListByClinic(ctx context.Context, clinicID primitive.ObjectID) ([]models.DoctorListing, error) {
	cursor, err := r.col.Find(ctx, bson.M{"clinic": clinicID},
		options.Find().SetProjection(bson.M{"_id": 0, "name": 1, "image": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not find this clinic's doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.DoctorListing, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("could not find this clinic's doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(hidePassword),
	).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not update this doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.Doctor, error) {
	return r.Update(ctx, id, bson.M{"password": hash})
}

func (r *DoctorRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id},
		options.FindOneAndDelete().SetProjection(hidePassword)).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not delete this doctor: %w", err)
	}
	return &doctor, nil
}
