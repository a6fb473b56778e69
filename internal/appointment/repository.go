package appointment

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, appointmentID, accountID string) (*Appointment, error)
	ListByAccount(ctx context.Context, accountID string) ([]Appointment, error)
	UpdateSchedule(ctx context.Context, appointmentID, accountID string, newDate time.Time, bay int) (*Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, accountID string, status AppointmentStatus) (*Appointment, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const appointmentColumns = `appointmentid, accountid, appointmentdate, createdat, status, appointment_bay, carid, orderid`

func scanAppointment(row *sql.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.AppointmentID,
		&a.AccountID,
		&a.AppointmentDate,
		&a.CreatedAt,
		&a.Status,
		&a.Bay,
		&a.CarID,
		&a.OrderID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, appointmentID, accountID string) (*Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE appointmentid = $1 AND accountid = $2
	`, appointmentID, accountID)
	return scanAppointment(row)
}

// ListByAccount returns the account's appointments in chronological
// order of the scheduled slot.
func (r *repository) ListByAccount(ctx context.Context, accountID string) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE accountid = $1
		ORDER BY appointmentdate ASC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]Appointment, 0)
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.AppointmentID,
			&a.AccountID,
			&a.AppointmentDate,
			&a.CreatedAt,
			&a.Status,
			&a.Bay,
			&a.CarID,
			&a.OrderID,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	return appointments, rows.Err()
}

// Both updates re-check the status in the WHERE clause. The service
// already rejects terminal appointments, but a concurrent cancel can
// land between that check and the update; the guard makes the second
// writer lose with zero rows instead of resurrecting a terminal row.
func (r *repository) UpdateSchedule(ctx context.Context, appointmentID, accountID string, newDate time.Time, bay int) (*Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET appointmentdate = $1, appointment_bay = $2
		WHERE appointmentid = $3 AND accountid = $4
			AND status NOT IN ('Completed', 'Cancelled')
		RETURNING `+appointmentColumns+`
	`, newDate, bay, appointmentID, accountID)

	a, err := scanAppointment(row)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentFinal
	}
	return a, nil
}

func (r *repository) UpdateStatus(ctx context.Context, appointmentID, accountID string, status AppointmentStatus) (*Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET status = $1
		WHERE appointmentid = $2 AND accountid = $3
			AND status NOT IN ('Completed', 'Cancelled')
		RETURNING `+appointmentColumns+`
	`, status, appointmentID, accountID)

	a, err := scanAppointment(row)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentFinal
	}
	return a, nil
}
