package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClinicAdmin struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Phone      string             `bson:"phone" json:"phone"`
	BirthDate  time.Time          `bson:"birthDate" json:"birthDate"`
	NationalID string             `bson:"nationalId" json:"nationalId"`
	Image      string             `bson:"image" json:"image"`
}
