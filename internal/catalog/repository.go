package catalog

import (
	"context"
	"database/sql"
	"strings"
)

type Repository interface {
	GetTyreByID(ctx context.Context, itemID string) (*Tyre, error)
	ListTyres(ctx context.Context) ([]Tyre, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	GetServiceByID(ctx context.Context, serviceID string) (*ServiceItem, error)
	ListServices(ctx context.Context) ([]ServiceItem, error)
	ListServicesByType(ctx context.Context, serviceType string) ([]ServiceItem, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTyreByID(ctx context.Context, itemID string) (*Tyre, error) {
	query := `
	SELECT itemid, brandid, description, cartype, tyresize, unitprice, stockunit, status
	FROM tyres
	WHERE itemid = $1
	`

	var t Tyre
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&t.ItemID,
		&t.BrandID,
		&t.Description,
		&t.CarType,
		&t.TyreSize,
		&t.UnitPrice,
		&t.Stock,
		&t.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListTyres(ctx context.Context) ([]Tyre, error) {
	query := `
	SELECT itemid, brandid, description, cartype, tyresize, unitprice, stockunit, status
	FROM tyres
	ORDER BY itemid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tyres := make([]Tyre, 0)
	for rows.Next() {
		var t Tyre
		if err := rows.Scan(
			&t.ItemID,
			&t.BrandID,
			&t.Description,
			&t.CarType,
			&t.TyreSize,
			&t.UnitPrice,
			&t.Stock,
			&t.Status,
		); err != nil {
			return nil, err
		}
		tyres = append(tyres, t)
	}

	return tyres, rows.Err()
}

func (r *repository) ListBrands(ctx context.Context) ([]Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT brandid, brandname FROM brands ORDER BY brandid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]Brand, 0)
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.BrandID, &b.BrandName); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *repository) GetServiceByID(ctx context.Context, serviceID string) (*ServiceItem, error) {
	query := `
	SELECT serviceid, typeid, description, cartype, price, status
	FROM services
	WHERE serviceid = $1
	`

	var s ServiceItem
	err := r.db.QueryRowContext(ctx, query, serviceID).Scan(
		&s.ServiceID,
		&s.ServiceType,
		&s.Description,
		&s.CarType,
		&s.Price,
		&s.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) ListServices(ctx context.Context) ([]ServiceItem, error) {
	return r.queryServices(ctx, `
	SELECT serviceid, typeid, description, cartype, price, status
	FROM services
	ORDER BY serviceid
	`)
}

func (r *repository) ListServicesByType(ctx context.Context, serviceType string) ([]ServiceItem, error) {
	return r.queryServices(ctx, `
	SELECT serviceid, typeid, description, cartype, price, status
	FROM services
	WHERE typeid = $1
	ORDER BY serviceid
	`, serviceType)
}

func (r *repository) queryServices(ctx context.Context, query string, args ...any) ([]ServiceItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]ServiceItem, 0)
	for rows.Next() {
		var s ServiceItem
		if err := rows.Scan(
			&s.ServiceID,
			&s.ServiceType,
			&s.Description,
			&s.CarType,
			&s.Price,
			&s.Status,
		); err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *repository) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT methodid, description FROM payment_methods ORDER BY methodid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]PaymentMethod, 0)
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.MethodID, &m.Description); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	return methods, rows.Err()
}

// IsTyreID reports whether a product id belongs to the tyre catalog.
// Tyre ids start with "T", service ids with "S".
func IsTyreID(productID string) bool {
	return strings.HasPrefix(productID, "T")
}
