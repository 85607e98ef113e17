// Package store is the mongo-backed data access layer. Handlers only see the
// repositories, never the client or raw collections.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OptionsCollection  = "appointmentOptions"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
	PaymentsCollection = "payments"
	ContactsCollection = "contacts"
)

var (
	ErrNotFound  = errors.New("store: document not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type Store struct {
	db *mongo.Database

	Options  *OptionRepository
	Bookings *BookingRepository
	Users    *UserRepository
	Doctors  *DoctorRepository
	Payments *PaymentRepository
	Contacts *ContactRepository
}

func New(db *mongo.Database) *Store {
	return &Store{
		db:       db,
		Options:  &OptionRepository{coll: db.Collection(OptionsCollection)},
		Bookings: &BookingRepository{coll: db.Collection(BookingsCollection)},
		Users:    &UserRepository{coll: db.Collection(UsersCollection)},
		Doctors:  &DoctorRepository{coll: db.Collection(DoctorsCollection)},
		Payments: &PaymentRepository{coll: db.Collection(PaymentsCollection)},
		Contacts: &ContactRepository{coll: db.Collection(ContactsCollection)},
	}
}

// Ping checks the connection behind the store.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// objectID resolves an opaque id. Anything that is not a stored id is simply
// not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// insertOne inserts doc and returns the hex id of the stored document.
func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}
