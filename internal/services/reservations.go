package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/models"
)

// ReservationStore is the slice of the reservation repository the lifecycle
// manager needs.
type ReservationStore interface {
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Reservation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	FindByClinic(ctx context.Context, clinicID primitive.ObjectID) ([]models.Reservation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReservationService owns the status lifecycle. The entry channel decides the
// initial status: a walk-in booked at the clinic is already staff-confirmed,
// a self-service booking waits for a reply.
type ReservationService struct {
	store ReservationStore
}

func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

func (s *ReservationService) CreateFromClinic(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	reservation.Status = models.ReservationApproved
	return s.store.Create(ctx, reservation)
}

func (s *ReservationService) CreateFromAPI(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	reservation.Status = models.ReservationPending
	return s.store.Create(ctx, reservation)
}

// Reply sets the caller-supplied status. Any status may replace any other;
// transitions are not validated, matching the system this replaces.
func (s *ReservationService) Reply(ctx context.Context, id primitive.ObjectID, status string) (*models.Reservation, error) {
	return s.store.UpdateStatus(ctx, id, status)
}

// Attend marks the reservation completed unconditionally.
func (s *ReservationService) Attend(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return s.store.UpdateStatus(ctx, id, models.ReservationCompleted)
}

func (s *ReservationService) GetOne(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ReservationService) GetByClinic(ctx context.Context, clinicID primitive.ObjectID) ([]models.Reservation, error) {
	return s.store.FindByClinic(ctx, clinicID)
}

func (s *ReservationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.Delete(ctx, id)
}
