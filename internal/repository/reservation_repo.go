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

type ReservationRepo struct {
	col *mongo.Collection
}

func NewReservationRepo(db *mongo.Database) *ReservationRepo {
	return &ReservationRepo{col: db.Collection("reservations")}
}

func (r *ReservationRepo) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	reservation.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, reservation); err != nil {
		return nil, fmt.Errorf("could not create this reservation: %w", err)
	}
	return reservation, nil
}

// UpdateStatus overwrites the status with whatever the caller supplies. There
// is no transition check; the lifecycle is permissive on purpose.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reservation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not update this reservation: %w", err)
	}
	return &reservation, nil
}

func (r *ReservationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get this reservation: %w", err)
	}
	return &reservation, nil
}

func (r *ReservationRepo) FindByClinic(ctx context.Context, clinicID primitive.ObjectID) ([]models.Reservation, error) {
	cursor, err := r.col.Find(ctx, bson.M{"clinic": clinicID})
	if err != nil {
		return nil, fmt.Errorf("could not get reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := make([]models.Reservation, 0)
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("could not get reservations: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("could not delete this reservation: %w", err)
	}
	return nil
}
