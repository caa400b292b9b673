package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation statuses. Status updates are intentionally permissive: reply and
// attend overwrite whatever status is stored, with no transition table.
const (
	ReservationPending   = "pending"
	ReservationApproved  = "approved"
	ReservationRejected  = "rejected"
	ReservationCompleted = "completed"
	ReservationCanceled  = "canceled"
)

type Reservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AmountPaid float64            `bson:"amount_paid" json:"amount_paid"`
	Status     string             `bson:"status" json:"status"`
	Date       time.Time          `bson:"date" json:"date"`
	Clinic     primitive.ObjectID `bson:"clinic" json:"clinic"`
	Doctor     primitive.ObjectID `bson:"doctor" json:"doctor"`
	Client     primitive.ObjectID `bson:"client" json:"client"`
}

func IsReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationApproved, ReservationRejected,
		ReservationCompleted, ReservationCanceled:
		return true
	}
	return false
}
