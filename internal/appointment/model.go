package appointment

import "time"

type AppointmentStatus string

const (
	// Pending is the entry status for appointments created by checkout.
	StatusPending AppointmentStatus = "Pending"
	// Future marks imported appointments that are scheduled but not yet
	// due. It behaves like Pending for every lifecycle rule.
	StatusFuture    AppointmentStatus = "Future"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Appointment struct {
	AppointmentID   string            `json:"appointmentid"`
	AccountID       string            `json:"accountid"`
	AppointmentDate time.Time         `json:"appointmentdate"`
	CreatedAt       time.Time         `json:"createdat"`
	Status          AppointmentStatus `json:"status"`
	Bay             int               `json:"appointment_bay"`
	CarID           *string           `json:"carid"`
	OrderID         *string           `json:"orderid"`
}

// Bays are numbered 1 through 5.
const (
	MinBay = 1
	MaxBay = 5
)

func ValidBay(bay int) bool {
	return bay >= MinBay && bay <= MaxBay
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// CombineSchedule merges a date string and a time string into a single
// appointment timestamp.
func CombineSchedule(dateStr, timeStr string) (time.Time, error) {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		t, err = time.Parse(timeLayout+":05", timeStr)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}
