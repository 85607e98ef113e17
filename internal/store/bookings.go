package store

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	coll *mongo.Collection
}

// ListByDate returns every booking whose appointmentDate label equals date.
func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{"appointmentDate": date})
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{"email": email})
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Booking](ctx, r.coll, bson.M{"_id": oid})
}

// FindMatching returns the bookings sharing the (email, treatment, date) key.
func (r *BookingRepository) FindMatching(ctx context.Context, email, treatment, date string) ([]models.Booking, error) {
	return findAll[models.Booking](ctx, r.coll, bson.M{
		"email":           email,
		"treatment":       treatment,
		"appointmentDate": date,
	})
}

// Insert stores b and sets its ID. A unique index violation is ErrDuplicate.
func (r *BookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	oid, err := insertOne(ctx, r.coll, b)
	if err != nil {
		return err
	}
	b.ID = oid
	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id, transactionID string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"paid": true, "transactionId": transactionID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
