package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a settled payment intent against a booking.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     string             `bson:"bookingId" json:"bookingId" binding:"required"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
