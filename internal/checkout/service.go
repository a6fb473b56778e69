package checkout

import (
	"context"

	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/vehicle"
)

// CarFinder resolves a car by id scoped to its owning account. A nil
// result means the car does not exist or belongs to someone else.
type CarFinder interface {
	GetByID(ctx context.Context, carID, accountID string) (*vehicle.Car, error)
}

type Service interface {
	Checkout(ctx context.Context, accountID, carID, dateStr, timeStr string, bay int) (string, error)
}

type service struct {
	repo  Repository
	cars  CarFinder
	locks *cart.AccountLocks
}

// NewService wires the checkout engine. The lock set must be the same
// instance the cart service uses so cart mutations and checkout for one
// account never interleave.
func NewService(repo Repository, cars CarFinder, locks *cart.AccountLocks) Service {
	return &service{repo: repo, cars: cars, locks: locks}
}

func (s *service) Checkout(ctx context.Context, accountID, carID, dateStr, timeStr string, bay int) (string, error) {
	if !appointment.ValidBay(bay) {
		return "", appointment.ErrInvalidBay
	}
	when, err := appointment.CombineSchedule(dateStr, timeStr)
	if err != nil {
		return "", appointment.ErrInvalidSchedule
	}

	car, err := s.cars.GetByID(ctx, carID, accountID)
	if err != nil {
		return "", err
	}
	if car == nil {
		return "", vehicle.ErrCarNotFound
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.repo.CreateOrderTx(ctx, OrderParams{
		AccountID:       accountID,
		CarID:           carID,
		AppointmentDate: when,
		Bay:             bay,
	})
}
