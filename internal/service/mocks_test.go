package service

import (
	"context"

	"clinic-cms/internal/docstore"
	"clinic-cms/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repository.Repository.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) List(ctx context.Context, filter docstore.Filter, limit int) ([]T, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) FindOne(ctx context.Context, filter docstore.Filter) (*T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Replace(ctx context.Context, id string, entity *T) (bool, error) {
	args := m.Called(ctx, id, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) SetFields(ctx context.Context, id string, fields docstore.Document) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockNotifier is a mock implementation of notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) AppointmentBooked(ctx context.Context, appt *model.Appointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}

func (m *MockNotifier) ContactReceived(ctx context.Context, msg *model.ContactSubmission) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(email, id string) (string, error) {
	args := m.Called(email, id)
	return args.String(0), args.Error(1)
}

func ptr[T any](v T) *T { return &v }
