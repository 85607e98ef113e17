package handlers_test

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockOptions struct{ mock.Mock }

func (m *MockOptions) List(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AppointmentOption), args.Error(1)
}

func (m *MockOptions) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockBookings implements both the handler repository and the guard store.
type MockBookings struct{ mock.Mock }

func (m *MockBookings) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookings) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookings) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockBookings) MarkPaid(ctx context.Context, id, transactionID string) error {
	return m.Called(ctx, id, transactionID).Error(0)
}

func (m *MockBookings) FindMatching(ctx context.Context, email, treatment, date string) ([]models.Booking, error) {
	args := m.Called(ctx, email, treatment, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookings) Insert(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Insert(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockUsers) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUsers) SetRole(ctx context.Context, id string, role models.Role) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockDoctors struct{ mock.Mock }

func (m *MockDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctors) Insert(ctx context.Context, d *models.Doctor) error {
	args := m.Called(ctx, d)
	if args.Error(0) == nil {
		d.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockDoctors) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) Insert(ctx context.Context, p *models.Payment) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

type MockContacts struct{ mock.Mock }

func (m *MockContacts) Insert(ctx context.Context, c *models.Contact) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	args := m.Called(ctx, amountMinor, currency)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendBookingConfirmation(b *models.Booking) {
	m.Called(b)
}
