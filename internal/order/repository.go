package order

import (
	"context"
	"database/sql"

	"tayarpro-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetOrder(ctx context.Context, orderID, accountID string) (*Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]Order, error)
	ListLineDetails(ctx context.Context, orderID string) ([]OrderLineDetail, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `orderid, accountid, createdat, totalprice, appointmentid, status, paymentmethod`

func (r *repository) GetOrder(ctx context.Context, orderID, accountID string) (*Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE orderid = $1 AND accountid = $2
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, orderID, accountID).Scan(
		&o.OrderID,
		&o.AccountID,
		&o.CreatedAt,
		&o.TotalPrice,
		&o.AppointmentID,
		&o.Status,
		&o.PaymentMethod,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) ListByAccount(ctx context.Context, accountID string) ([]Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE accountid = $1
	ORDER BY createdat DESC, orderid DESC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.OrderID,
			&o.AccountID,
			&o.CreatedAt,
			&o.TotalPrice,
			&o.AppointmentID,
			&o.Status,
			&o.PaymentMethod,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// ListLineDetails returns the order's lines enriched with tyre, service
// and car descriptions via left joins. Unmatched joins come back as nil
// sub-objects.
func (r *repository) ListLineDetails(ctx context.Context, orderID string) ([]OrderLineDetail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListLineDetails"),
		zap.String("orderid", orderID),
	)

	query := `
	SELECT
		d.orderid,
		d.productid,
		d.carid,
		d.unitprice,
		d.quantity,
		d.totalprice,

		c.carid,
		c.carbrand,
		c.carmodel,
		c.platenumber,

		t.itemid,
		t.description,

		s.serviceid,
		s.description
	FROM orders_detail d
	LEFT JOIN registered_cars c ON d.carid = c.carid
	LEFT JOIN tyres t ON d.productid = t.itemid
	LEFT JOIN services s ON d.productid = s.serviceid
	WHERE d.orderid = $1
	ORDER BY d.productid
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	details := make([]OrderLineDetail, 0)
	for rows.Next() {
		var d OrderLineDetail
		var (
			carID, carBrand, carModel, plateNumber *string
			tyreID, tyreDesc                       *string
			serviceID, serviceDesc                 *string
		)

		if err := rows.Scan(
			&d.OrderID,
			&d.ProductID,
			&d.CarID,
			&d.UnitPrice,
			&d.Quantity,
			&d.TotalPrice,
			&carID,
			&carBrand,
			&carModel,
			&plateNumber,
			&tyreID,
			&tyreDesc,
			&serviceID,
			&serviceDesc,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}

		if carID != nil {
			d.Car = &CarInfo{
				CarID:       *carID,
				CarBrand:    deref(carBrand),
				CarModel:    deref(carModel),
				PlateNumber: deref(plateNumber),
			}
		}
		if tyreID != nil {
			d.Tyre = &TyreInfo{ItemID: *tyreID, Description: deref(tyreDesc)}
		}
		if serviceID != nil {
			d.Service = &ServiceInfo{ServiceID: *serviceID, Description: deref(serviceDesc)}
		}

		details = append(details, d)
	}

	return details, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
