package account

import (
	"context"
	"database/sql"

	"tayarpro-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, a *Account) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByID(ctx context.Context, accountID string) (*Account, error)
	UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*Account, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const accountColumns = `
	accountid, username, firstname, lastname, phonenumber, email,
	address, city, state, zipcode, gender, password, createdat, isactive
`

func scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	err := row.Scan(
		&a.AccountID,
		&a.Username,
		&a.FirstName,
		&a.LastName,
		&a.PhoneNumber,
		&a.Email,
		&a.Address,
		&a.City,
		&a.State,
		&a.ZipCode,
		&a.Gender,
		&a.Password,
		&a.CreatedAt,
		&a.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	log := logger.FromCtx(ctx)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		a.AccountID,
		a.Username,
		a.FirstName,
		a.LastName,
		a.PhoneNumber,
		a.Email,
		a.Address,
		a.City,
		a.State,
		a.ZipCode,
		a.Gender,
		a.Password,
		a.CreatedAt,
		a.IsActive,
	)
	if err != nil {
		log.Error("db: failed to insert account",
			zap.String("username", a.Username),
			zap.Error(err),
		)
	}

	return err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE username = $1 AND isactive = 'Y'
	`, username)
	return scanAccount(row)
}

func (r *repository) FindByID(ctx context.Context, accountID string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE accountid = $1
	`, accountID)
	return scanAccount(row)
}

func (r *repository) UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE accounts
		SET firstname = $1,
		    lastname = $2,
		    phonenumber = $3,
		    address = $4,
		    city = $5,
		    state = $6,
		    zipcode = $7
		WHERE accountid = $8
		RETURNING `+accountColumns+`
	`,
		params.FirstName,
		params.LastName,
		params.PhoneNumber,
		params.Address,
		params.City,
		params.State,
		params.ZipCode,
		accountID,
	)

	a, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}
