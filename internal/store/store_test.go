package store

import (
	"context"
	"testing"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func duplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"})
}

func TestBookingRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list by date", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, BookingsCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "treatment", Value: "Cavity"}, {Key: "slot", Value: "9AM"}, {Key: "appointmentDate", Value: "Jan 1"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "treatment", Value: "Cleaning"}, {Key: "slot", Value: "10AM"}, {Key: "appointmentDate", Value: "Jan 1"}},
		))

		got, err := s.Bookings.ListByDate(ctx, "Jan 1")
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "Cavity", got[0].Treatment)
		assert.Equal(mt, "10AM", got[1].Slot)
	})

	mt.Run("empty result is not nil", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, BookingsCollection), mtest.FirstBatch))

		got, err := s.Bookings.ListByEmail(ctx, "nobody@example.com")
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		s := New(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, BookingsCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "email", Value: "a@example.com"}}))

		got, err := s.Bookings.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
		assert.Equal(mt, "a@example.com", got.Email)
	})

	mt.Run("unknown and malformed ids are not found", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, BookingsCollection), mtest.FirstBatch))

		_, err := s.Bookings.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)

		_, err = s.Bookings.FindByID(ctx, "not-an-id")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("insert sets id", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &models.Booking{Email: "a@example.com", Treatment: "Cavity", AppointmentDate: "Jan 1", Slot: "9AM"}
		require.NoError(mt, s.Bookings.Insert(ctx, b))
		assert.False(mt, b.ID.IsZero())
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(duplicateKey())

		err := s.Bookings.Insert(ctx, &models.Booking{Email: "a@example.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("mark paid", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		assert.NoError(mt, s.Bookings.MarkPaid(ctx, primitive.NewObjectID().Hex(), "txn"))
		assert.ErrorIs(mt, s.Bookings.MarkPaid(ctx, primitive.NewObjectID().Hex(), "txn"), ErrNotFound)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by email", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, UsersCollection), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "admin@example.com"}, {Key: "role", Value: "admin"}}))

		u, err := s.Users.FindByEmail(ctx, "admin@example.com")
		require.NoError(mt, err)
		assert.True(mt, u.IsAdmin())
	})

	mt.Run("missing user", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, UsersCollection), mtest.FirstBatch))

		_, err := s.Users.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("set role", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		modified, err := s.Users.SetRole(ctx, primitive.NewObjectID().Hex(), models.RoleAdmin)
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, modified)

		_, err = s.Users.SetRole(ctx, primitive.NewObjectID().Hex(), models.RoleAdmin)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(duplicateKey())

		err := s.Users.Insert(ctx, &models.User{Email: "a@example.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})
}

func TestOptionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list keeps slot order", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, OptionsCollection), mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Cavity"}, {Key: "price", Value: 80.0}, {Key: "slots", Value: bson.A{"9AM", "10AM"}}}))

		got, err := s.Options.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, []string{"9AM", "10AM"}, got[0].Slots)
	})

	mt.Run("names", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Cleaning", "Cavity"}}))

		names, err := s.Options.Names(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"Cavity", "Cleaning"}, names)
	})

	mt.Run("seed skips populated catalog", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, OptionsCollection), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}}))

		n, err := s.Seed(ctx)
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})

	mt.Run("seed empty catalog", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, OptionsCollection), mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		n, err := s.Seed(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, len(DefaultOptions()), n)
	})
}

func TestDoctorRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("delete", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, s.Doctors.Delete(ctx, primitive.NewObjectID().Hex()))
		assert.ErrorIs(mt, s.Doctors.Delete(ctx, primitive.NewObjectID().Hex()), ErrNotFound)
		assert.ErrorIs(mt, s.Doctors.Delete(ctx, "nope"), ErrNotFound)
	})

	mt.Run("insert", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		d := &models.Doctor{Name: "Dr. No", Specialty: "Oral Surgery"}
		require.NoError(mt, s.Doctors.Insert(ctx, d))
		assert.False(mt, d.ID.IsZero())
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("users only", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		names, err := s.EnsureIndexes(ctx, false)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"user_email_unique"}, names)
	})

	mt.Run("with booking key", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		names, err := s.EnsureIndexes(ctx, true)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"user_email_unique", "booking_key_unique"}, names)
	})
}

func TestDefaultOptions_IndependentSlots(t *testing.T) {
	opts := DefaultOptions()
	require.NotEmpty(t, opts)
	opts[0].Slots[0] = "changed"
	assert.NotEqual(t, "changed", DefaultOptions()[0].Slots[0])
	assert.NotEqual(t, "changed", opts[1].Slots[0])
}
