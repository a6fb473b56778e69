package vehicle

import "context"

type Service interface {
	RegisterCar(ctx context.Context, accountID string, params RegisterCarParams) (*Car, error)
	GetCars(ctx context.Context, accountID string) ([]Car, error)
	GetCar(ctx context.Context, carID, accountID string) (*Car, error)
	DeleteCar(ctx context.Context, carID, accountID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterCar(ctx context.Context, accountID string, params RegisterCarParams) (*Car, error) {
	if params.PlateNumber == "" || params.CarBrand == "" || params.CarModel == "" {
		return nil, ErrInvalidInput
	}
	if params.CarYear <= 1800 {
		return nil, ErrInvalidInput
	}

	return s.repo.CreateCar(ctx, accountID, params)
}

func (s *service) GetCars(ctx context.Context, accountID string) ([]Car, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *service) GetCar(ctx context.Context, carID, accountID string) (*Car, error) {
	car, err := s.repo.GetByID(ctx, carID, accountID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *service) DeleteCar(ctx context.Context, carID, accountID string) error {
	return s.repo.Delete(ctx, carID, accountID)
}
