package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of one treatment on one date for one patient.
// AppointmentDate is an opaque date label and is never parsed.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate" binding:"required"`
	Treatment       string             `bson:"treatment" json:"treatment" binding:"required"`
	Patient         string             `bson:"patient" json:"patient"`
	Slot            string             `bson:"slot" json:"slot" binding:"required"`
	Email           string             `bson:"email" json:"email" binding:"required"`
	Phone           string             `bson:"phone" json:"phone"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
