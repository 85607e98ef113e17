package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OptionRepository struct {
	coll *mongo.Collection
}

func (r *OptionRepository) List(ctx context.Context) ([]models.AppointmentOption, error) {
	return findAll[models.AppointmentOption](ctx, r.coll, bson.M{})
}

// Names returns the distinct treatment names in the catalog, sorted.
func (r *OptionRepository) Names(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "name", bson.M{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("store: unexpected option name type %T", v)
		}
		names = append(names, s)
	}
	sort.Strings(names)
	return names, nil
}

func (r *OptionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *OptionRepository) InsertMany(ctx context.Context, opts []models.AppointmentOption) (int, error) {
	if len(opts) == 0 {
		return 0, nil
	}
	docs := make([]any, len(opts))
	for i := range opts {
		docs[i] = opts[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
