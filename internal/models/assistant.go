package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Assistant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Clinic   primitive.ObjectID `bson:"clinic" json:"clinic"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}
