package appointment

import (
	"context"
)

// CarChecker reports whether the account has at least one registered car.
// Rescheduling is only allowed for accounts with a car on file.
type CarChecker interface {
	HasCars(ctx context.Context, accountID string) (bool, error)
}

type Service interface {
	GetAppointment(ctx context.Context, appointmentID, accountID string) (*Appointment, error)
	ListAppointments(ctx context.Context, accountID string) ([]Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID, accountID, dateStr, timeStr string, bay int) (*Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID, accountID string) (*Appointment, error)
}

type service struct {
	repo Repository
	cars CarChecker
}

func NewService(repo Repository, cars CarChecker) Service {
	return &service{repo: repo, cars: cars}
}

func (s *service) GetAppointment(ctx context.Context, appointmentID, accountID string) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, appointmentID, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (s *service) ListAppointments(ctx context.Context, accountID string) ([]Appointment, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *service) UpdateAppointment(ctx context.Context, appointmentID, accountID, dateStr, timeStr string, bay int) (*Appointment, error) {
	if !ValidBay(bay) {
		return nil, ErrInvalidBay
	}
	newDate, err := CombineSchedule(dateStr, timeStr)
	if err != nil {
		return nil, ErrInvalidSchedule
	}

	hasCars, err := s.cars.HasCars(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !hasCars {
		return nil, ErrNoRegisteredCar
	}

	current, err := s.repo.GetByID(ctx, appointmentID, accountID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrAppointmentNotFound
	}
	if current.Status.Terminal() {
		return nil, ErrAppointmentFinal
	}

	return s.repo.UpdateSchedule(ctx, appointmentID, accountID, newDate, bay)
}

func (s *service) CancelAppointment(ctx context.Context, appointmentID, accountID string) (*Appointment, error) {
	current, err := s.repo.GetByID(ctx, appointmentID, accountID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrAppointmentNotFound
	}
	if current.Status.Terminal() {
		return nil, ErrAppointmentFinal
	}

	return s.repo.UpdateStatus(ctx, appointmentID, accountID, StatusCancelled)
}
