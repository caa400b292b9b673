package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "Pending"
	StatusActive  = "Active"
)

type Client struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName           string             `bson:"firstName" json:"firstName"`
	LastName            string             `bson:"lastName" json:"lastName"`
	Username            string             `bson:"username,omitempty" json:"username,omitempty"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password" json:"-"` // Hide from JSON responses
	Phone               string             `bson:"phone" json:"phone"`
	Gender              string             `bson:"gender,omitempty" json:"gender,omitempty"`
	BirthDate           *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	LastVisit           *time.Time         `bson:"lastVisit,omitempty" json:"lastVisit,omitempty"`
	Image               string             `bson:"image,omitempty" json:"image,omitempty"`
	Status              string             `bson:"status" json:"status"` // "Pending" until the email is confirmed
	ConfirmationCode    string             `bson:"confirmationCode" json:"confirmationCode"`
	ForgotPasswordToken string             `bson:"forgotPasswordToken,omitempty" json:"-"`
	ForgotPasswordExp   *time.Time         `bson:"forgotPasswordExpiresAt,omitempty" json:"-"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
