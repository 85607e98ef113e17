package store

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository struct {
	coll *mongo.Collection
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	return findAll[models.Doctor](ctx, r.coll, bson.M{})
}

func (r *DoctorRepository) Insert(ctx context.Context, d *models.Doctor) error {
	oid, err := insertOne(ctx, r.coll, d)
	if err != nil {
		return err
	}
	d.ID = oid
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
