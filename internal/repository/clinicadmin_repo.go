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

type ClinicAdminRepo struct {
	col *mongo.Collection
}

func NewClinicAdminRepo(db *mongo.Database) *ClinicAdminRepo {
	return &ClinicAdminRepo{col: db.Collection("clinicadmins")}
}

func (r *ClinicAdminRepo) Create(ctx context.Context, admin *models.ClinicAdmin) (*models.ClinicAdmin, error) {
	admin.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, admin); err != nil {
		return nil, fmt.Errorf("could not create this clinic admin: %w", err)
	}
	return admin, nil
}

func (r *ClinicAdminRepo) FindByEmail(ctx context.Context, email string) (*models.ClinicAdmin, error) {
	var admin models.ClinicAdmin
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this user %s: %w", email, err)
	}
	return &admin, nil
}

func (r *ClinicAdminRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClinicAdmin, error) {
	var admin models.ClinicAdmin
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(hidePassword)).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not show this clinic admin: %w", err)
	}
	return &admin, nil
}

func (r *ClinicAdminRepo) FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*models.ClinicAdmin, error) {
	var admin models.ClinicAdmin
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not find this user: %w", err)
	}
	return &admin, nil
}

func (r *ClinicAdminRepo) List(ctx context.Context) ([]models.ClinicAdmin, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(hidePassword))
	if err != nil {
		return nil, fmt.Errorf("could not get clinic admins: %w", err)
	}
	defer cursor.Close(ctx)

	admins := make([]models.ClinicAdmin, 0)
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("could not get clinic admins: %w", err)
	}
	return admins, nil
}

func (r *ClinicAdminRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.ClinicAdmin, error) {
	var admin models.ClinicAdmin
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(hidePassword),
	).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not edit this clinic admin: %w", err)
	}
	return &admin, nil
}

func (r *ClinicAdminRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.ClinicAdmin, error) {
	return r.Update(ctx, id, bson.M{"password": hash})
}

func (r *ClinicAdminRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.ClinicAdmin, error) {
	var admin models.ClinicAdmin
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id},
		options.FindOneAndDelete().SetProjection(hidePassword)).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not delete this clinic admin: %w", err)
	}
	return &admin, nil
}
