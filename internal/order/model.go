package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	OrderID       string          `json:"orderid"`
	AccountID     string          `json:"accountid"`
	CreatedAt     time.Time       `json:"createdat"`
	TotalPrice    decimal.Decimal `json:"totalprice"`
	AppointmentID *string         `json:"appointmentid"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod *string         `json:"paymentmethod"`
}

// OrderLine is a priced snapshot of one product within an order. The
// total is persisted at checkout time and never recomputed, so later
// catalog price changes cannot alter historical orders.
type OrderLine struct {
	OrderID    string          `json:"orderid"`
	ProductID  string          `json:"productid"`
	CarID      string          `json:"carid"`
	UnitPrice  decimal.Decimal `json:"unitprice"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalprice"`
}

// Enrichment sub-objects for order detail reads. A nil pointer means
// the lookup had no match; that is not an error.
type CarInfo struct {
	CarID       string `json:"carid"`
	CarBrand    string `json:"carbrand"`
	CarModel    string `json:"carmodel"`
	PlateNumber string `json:"platenumber"`
}

type TyreInfo struct {
	ItemID      string `json:"itemid"`
	Description string `json:"description"`
}

type ServiceInfo struct {
	ServiceID   string `json:"serviceid"`
	Description string `json:"description"`
}

type OrderLineDetail struct {
	OrderLine
	Car     *CarInfo     `json:"car"`
	Tyre    *TyreInfo    `json:"tyre"`
	Service *ServiceInfo `json:"service"`
}
