package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetTyreByID(ctx context.Context, itemID string) (*Tyre, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tyre), args.Error(1)
}

func (m *MockRepository) ListTyres(ctx context.Context) ([]Tyre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tyre), args.Error(1)
}

func (m *MockRepository) ListBrands(ctx context.Context) ([]Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Brand), args.Error(1)
}

func (m *MockRepository) GetServiceByID(ctx context.Context, serviceID string) (*ServiceItem, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ServiceItem), args.Error(1)
}

func (m *MockRepository) ListServices(ctx context.Context) ([]ServiceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ServiceItem), args.Error(1)
}

func (m *MockRepository) ListServicesByType(ctx context.Context, serviceType string) ([]ServiceItem, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ServiceItem), args.Error(1)
}

func (m *MockRepository) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentMethod), args.Error(1)
}

func TestService_GetTyre(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTyreByID", mock.Anything, "T0001").
			Return(&Tyre{ItemID: "T0001"}, nil)

		svc := NewService(repo)
		tyre, err := svc.GetTyre(context.Background(), "T0001")
		assert.NoError(t, err)
		assert.Equal(t, "T0001", tyre.ItemID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTyreByID", mock.Anything, "T9999").Return(nil, nil)

		svc := NewService(repo)
		_, err := svc.GetTyre(context.Background(), "T9999")
		assert.ErrorIs(t, err, ErrTyreNotFound)
	})
}

func TestService_GetServiceItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetServiceByID", mock.Anything, "S0001").
			Return(&ServiceItem{ServiceID: "S0001"}, nil)

		svc := NewService(repo)
		item, err := svc.GetServiceItem(context.Background(), "S0001")
		assert.NoError(t, err)
		assert.Equal(t, "S0001", item.ServiceID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetServiceByID", mock.Anything, "S9999").Return(nil, nil)

		svc := NewService(repo)
		_, err := svc.GetServiceItem(context.Background(), "S9999")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestService_ResolveProduct(t *testing.T) {
	t.Run("Tyre", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTyreByID", mock.Anything, "T0001").
			Return(&Tyre{
				ItemID:      "T0001",
				Description: "Michelin Pilot Sport 4",
				UnitPrice:   decimal.RequireFromString("550.00"),
			}, nil)

		svc := NewService(repo)
		product, err := svc.ResolveProduct(context.Background(), "T0001")
		require.NoError(t, err)
		assert.Equal(t, "T0001", product.ProductID)
		assert.True(t, product.UnitPrice.Equal(decimal.RequireFromString("550.00")))
		repo.AssertNotCalled(t, "GetServiceByID", mock.Anything, mock.Anything)
	})

	t.Run("Service", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetServiceByID", mock.Anything, "S0001").
			Return(&ServiceItem{
				ServiceID:   "S0001",
				Description: "Wheel Alignment",
				Price:       decimal.RequireFromString("50.00"),
			}, nil)

		svc := NewService(repo)
		product, err := svc.ResolveProduct(context.Background(), "S0001")
		require.NoError(t, err)
		assert.Equal(t, "S0001", product.ProductID)
		assert.Equal(t, "Wheel Alignment", product.Description)
	})

	t.Run("TyreNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTyreByID", mock.Anything, "T9999").Return(nil, nil)

		svc := NewService(repo)
		_, err := svc.ResolveProduct(context.Background(), "T9999")
		assert.ErrorIs(t, err, ErrTyreNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetServiceByID", mock.Anything, "S0001").
			Return(nil, errors.New("db error"))

		svc := NewService(repo)
		_, err := svc.ResolveProduct(context.Background(), "S0001")
		assert.Error(t, err)
	})
}

func TestService_ListServicesByType(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListServicesByType", mock.Anything, "ST99").Return([]ServiceItem{}, nil)

		svc := NewService(repo)
		_, err := svc.ListServicesByType(context.Background(), "ST99")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
