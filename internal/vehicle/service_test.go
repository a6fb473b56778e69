package vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCar(ctx context.Context, accountID string, params RegisterCarParams) (*Car, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Car), args.Error(1)
}

func (m *MockRepository) ListByAccount(ctx context.Context, accountID string) ([]Car, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Car), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, carID, accountID string) (*Car, error) {
	args := m.Called(ctx, carID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Car), args.Error(1)
}

func (m *MockRepository) HasCars(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, carID, accountID string) error {
	args := m.Called(ctx, carID, accountID)
	return args.Error(0)
}

func TestService_RegisterCar(t *testing.T) {
	valid := RegisterCarParams{
		PlateNumber: "WXY1234",
		CarBrand:    "Toyota",
		CarModel:    "Vios",
		CarYear:     2020,
		TyreSize:    "185/60R15",
		CarType:     "Passenger",
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateCar", mock.Anything, "acc-1", valid).
			Return(&Car{CarID: "CAR0001", AccountID: "acc-1"}, nil)

		svc := NewService(repo)
		car, err := svc.RegisterCar(context.Background(), "acc-1", valid)
		require.NoError(t, err)
		assert.Equal(t, "CAR0001", car.CarID)
	})

	t.Run("MissingPlate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		bad := valid
		bad.PlateNumber = ""
		_, err := svc.RegisterCar(context.Background(), "acc-1", bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateCar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadYear", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		bad := valid
		bad.CarYear = 1700
		_, err := svc.RegisterCar(context.Background(), "acc-1", bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetCar(t *testing.T) {
	t.Run("NotOwned", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", mock.Anything, "CAR0001", "acc-2").Return(nil, nil)

		svc := NewService(repo)
		_, err := svc.GetCar(context.Background(), "CAR0001", "acc-2")
		assert.ErrorIs(t, err, ErrCarNotFound)
	})
}
