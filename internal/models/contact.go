package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email" binding:"required"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message" binding:"required"`
}
