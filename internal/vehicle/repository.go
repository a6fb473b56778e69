package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"tayarpro-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateCar(ctx context.Context, accountID string, params RegisterCarParams) (*Car, error)
	ListByAccount(ctx context.Context, accountID string) ([]Car, error)
	GetByID(ctx context.Context, carID, accountID string) (*Car, error)
	HasCars(ctx context.Context, accountID string) (bool, error)
	Delete(ctx context.Context, carID, accountID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCar(ctx context.Context, accountID string, params RegisterCarParams) (*Car, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCar"),
		zap.String("accountid", accountID),
	)

	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('carid_seq')`).Scan(&seq); err != nil {
		log.Error("failed to allocate car id", zap.Error(err))
		return nil, err
	}
	carID := fmt.Sprintf("CAR%04d", seq)

	query := `
	INSERT INTO registered_cars (
		carid, accountid, platenumber, carbrand, carmodel, caryear, tyresize, cartype
	)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	RETURNING carid, accountid, platenumber, carbrand, carmodel, caryear, tyresize, cartype, addedat
	`

	var c Car
	err := r.db.QueryRowContext(
		ctx,
		query,
		carID,
		accountID,
		params.PlateNumber,
		params.CarBrand,
		params.CarModel,
		params.CarYear,
		params.TyreSize,
		params.CarType,
	).Scan(
		&c.CarID,
		&c.AccountID,
		&c.PlateNumber,
		&c.CarBrand,
		&c.CarModel,
		&c.CarYear,
		&c.TyreSize,
		&c.CarType,
		&c.AddedAt,
	)
	if err != nil {
		log.Error("failed to register car", zap.Error(err))
		return nil, err
	}

	log.Info("car registered", zap.String("carid", c.CarID))
	return &c, nil
}

func (r *repository) ListByAccount(ctx context.Context, accountID string) ([]Car, error) {
	query := `
	SELECT carid, accountid, platenumber, carbrand, carmodel, caryear, tyresize, cartype, addedat
	FROM registered_cars
	WHERE accountid = $1
	ORDER BY carid
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]Car, 0)
	for rows.Next() {
		var c Car
		if err := rows.Scan(
			&c.CarID,
			&c.AccountID,
			&c.PlateNumber,
			&c.CarBrand,
			&c.CarModel,
			&c.CarYear,
			&c.TyreSize,
			&c.CarType,
			&c.AddedAt,
		); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, carID, accountID string) (*Car, error) {
	query := `
	SELECT carid, accountid, platenumber, carbrand, carmodel, caryear, tyresize, cartype, addedat
	FROM registered_cars
	WHERE carid = $1 AND accountid = $2
	`

	var c Car
	err := r.db.QueryRowContext(ctx, query, carID, accountID).Scan(
		&c.CarID,
		&c.AccountID,
		&c.PlateNumber,
		&c.CarBrand,
		&c.CarModel,
		&c.CarYear,
		&c.TyreSize,
		&c.CarType,
		&c.AddedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) HasCars(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM registered_cars WHERE accountid = $1)`,
		accountID,
	).Scan(&exists)
	return exists, err
}

func (r *repository) Delete(ctx context.Context, carID, accountID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM registered_cars
		WHERE carid = $1 AND accountid = $2
	`, carID, accountID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}
