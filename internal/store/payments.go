package store

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func (r *PaymentRepository) Insert(ctx context.Context, p *models.Payment) error {
	oid, err := insertOne(ctx, r.coll, p)
	if err != nil {
		return err
	}
	p.ID = oid
	return nil
}

type ContactRepository struct {
	coll *mongo.Collection
}

func (r *ContactRepository) Insert(ctx context.Context, c *models.Contact) error {
	oid, err := insertOne(ctx, r.coll, c)
	if err != nil {
		return err
	}
	c.ID = oid
	return nil
}
