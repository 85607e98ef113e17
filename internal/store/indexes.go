package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingKeyIndex is the unique (email, treatment, appointmentDate) index that
// closes the check-then-insert race of the conflict guard.
var BookingKeyIndex = mongo.IndexModel{
	Keys: bson.D{
		{Key: "email", Value: 1},
		{Key: "treatment", Value: 1},
		{Key: "appointmentDate", Value: 1},
	},
	Options: options.Index().SetUnique(true).SetName("booking_key_unique"),
}

var UserEmailIndex = mongo.IndexModel{
	Keys:    bson.D{{Key: "email", Value: 1}},
	Options: options.Index().SetUnique(true).SetName("user_email_unique"),
}

// EnsureIndexes creates the unique user email index and, when uniqueBookings
// is set, the booking key index. Creating an existing index is a no-op.
func (s *Store) EnsureIndexes(ctx context.Context, uniqueBookings bool) ([]string, error) {
	var created []string
	name, err := s.db.Collection(UsersCollection).Indexes().CreateOne(ctx, UserEmailIndex)
	if err != nil {
		return created, err
	}
	created = append(created, name)

	if uniqueBookings {
		name, err = s.db.Collection(BookingsCollection).Indexes().CreateOne(ctx, BookingKeyIndex)
		if err != nil {
			return created, err
		}
		created = append(created, name)
	}
	return created, nil
}
