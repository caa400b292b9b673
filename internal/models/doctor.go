package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	EndTime   time.Time          `bson:"endTime" json:"endTime"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Clinic    primitive.ObjectID `bson:"clinic" json:"clinic"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}

// DoctorListing is the public directory projection of a doctor.
type DoctorListing struct {
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}
