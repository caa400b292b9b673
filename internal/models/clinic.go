package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Location struct {
	City     string `bson:"city" json:"city"`
	Street   string `bson:"street" json:"street"`
	Building int    `bson:"building" json:"building"`
}

type Clinic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Location    Location           `bson:"location" json:"location"`
	WaitingTime int                `bson:"waitingTime" json:"waitingTime"`
	OpensAt     int                `bson:"opensAt" json:"opensAt"`   // hour of day, 0-24
	ClosesAt    int                `bson:"closesAt" json:"closesAt"` // hour of day, 0-24
	Phone       string             `bson:"phone" json:"phone"`
	Price       float64            `bson:"price" json:"price"`
	ClinicAdmin primitive.ObjectID `bson:"clinicAdmin" json:"clinicAdmin"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}
