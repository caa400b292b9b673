package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/a-team/clinic-booking-api/internal/models"
)

// fakeReservationStore keeps reservations in a map so the lifecycle can be
// exercised without a database.
type fakeReservationStore struct {
	byID map[primitive.ObjectID]*models.Reservation
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{byID: make(map[primitive.ObjectID]*models.Reservation)}
}

func (f *fakeReservationStore) Create(_ context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	reservation.ID = primitive.NewObjectID()
	f.byID[reservation.ID] = reservation
	return reservation, nil
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	r.Status = status
	return r, nil
}

func (f *fakeReservationStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return f.byID[id], nil
}

func (f *fakeReservationStore) FindByClinic(_ context.Context, clinicID primitive.ObjectID) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.byID {
		if r.Clinic == clinicID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.byID, id)
	return nil
}

func TestCreateFromClinicStartsApproved(t *testing.T) {
	svc := NewReservationService(newFakeReservationStore())

	r, err := svc.CreateFromClinic(context.Background(), &models.Reservation{AmountPaid: 150})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationApproved, r.Status)
	assert.False(t, r.ID.IsZero())
}

func TestCreateFromAPIStartsPending(t *testing.T) {
	svc := NewReservationService(newFakeReservationStore())

	r, err := svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 150})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, r.Status)
}

func TestReplyOverwritesAnyStatus(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewReservationService(store)

	r, err := svc.CreateFromClinic(context.Background(), &models.Reservation{AmountPaid: 80})
	require.NoError(t, err)

	// No transition table: an approved reservation can go back to pending,
	// and a completed one can be rejected.
	r, err = svc.Reply(context.Background(), r.ID, models.ReservationPending)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, r.Status)

	_, err = svc.Attend(context.Background(), r.ID)
	require.NoError(t, err)

	r, err = svc.Reply(context.Background(), r.ID, models.ReservationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationRejected, r.Status)
}

func TestAttendMarksCompleted(t *testing.T) {
	svc := NewReservationService(newFakeReservationStore())

	r, err := svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 200})
	require.NoError(t, err)

	r, err = svc.Attend(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCompleted, r.Status)
}

func TestGetByClinicFiltersByClinic(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewReservationService(store)

	clinicA := primitive.NewObjectID()
	clinicB := primitive.NewObjectID()
	_, err := svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 10, Clinic: clinicA})
	require.NoError(t, err)
	_, err = svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 20, Clinic: clinicA})
	require.NoError(t, err)
	_, err = svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 30, Clinic: clinicB})
	require.NoError(t, err)

	got, err := svc.GetByClinic(context.Background(), clinicA)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteRemovesReservation(t *testing.T) {
	store := newFakeReservationStore()
	svc := NewReservationService(store)

	r, err := svc.CreateFromAPI(context.Background(), &models.Reservation{AmountPaid: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), r.ID))

	got, err := svc.GetOne(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
