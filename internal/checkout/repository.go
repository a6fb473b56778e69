package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderParams carries everything a single checkout writes. The car id
// applies uniformly to every order line.
type OrderParams struct {
	AccountID       string
	CarID           string
	AppointmentDate time.Time
	Bay             int
}

type Repository interface {
	CreateOrderTx(ctx context.Context, params OrderParams) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type cartLine struct {
	productID string
	quantity  int
	unitPrice decimal.Decimal
}

// CreateOrderTx converts the account's cart into an order, its lines
// and a pending appointment in one transaction. Either the appointment,
// order, lines and cart delete all commit, or none of them do.
func (r *repository) CreateOrderTx(ctx context.Context, params OrderParams) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("accountid", params.AccountID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin transaction failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	lines, err := readCartSnapshot(ctx, tx, params.AccountID)
	if err != nil {
		log.Error("cart snapshot failed", zap.Error(err))
		return "", err
	}
	if len(lines) == 0 {
		return "", cart.ErrCartEmpty
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity))))
	}

	appointmentID, err := nextID(ctx, tx, "appointmentid_seq", "APT")
	if err != nil {
		log.Error("appointment id allocation failed", zap.Error(err))
		return "", err
	}
	orderID, err := nextID(ctx, tx, "orderid_seq", "ORD")
	if err != nil {
		log.Error("order id allocation failed", zap.Error(err))
		return "", err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO appointments (appointmentid, accountid, appointmentdate, createdat, status, appointment_bay, carid, orderid)
		VALUES ($1, $2, $3, NOW(), 'Pending', $4, $5, $6)
	`, appointmentID, params.AccountID, params.AppointmentDate, params.Bay, params.CarID, orderID)
	if err != nil {
		log.Error("appointment insert failed", zap.Error(err))
		return "", err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (orderid, accountid, createdat, totalprice, appointmentid, status, paymentmethod)
		VALUES ($1, $2, NOW(), $3, $4, 'Pending', NULL)
	`, orderID, params.AccountID, total, appointmentID)
	if err != nil {
		log.Error("order insert failed", zap.Error(err))
		return "", err
	}

	for _, l := range lines {
		lineTotal := l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
		_, err = tx.ExecContext(ctx, `
			INSERT INTO orders_detail (orderid, productid, carid, unitprice, quantity, totalprice)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, orderID, l.productID, params.CarID, l.unitPrice, l.quantity, lineTotal)
		if err != nil {
			log.Error("order line insert failed", zap.Error(err), zap.String("productid", l.productID))
			return "", err
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM carts WHERE accountid = $1`, params.AccountID)
	if err != nil {
		log.Error("cart clear failed", zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return "", err
	}

	log.Info("checkout committed",
		zap.String("orderid", orderID),
		zap.String("appointmentid", appointmentID),
		zap.String("totalprice", total.String()),
		zap.Int("lines", len(lines)),
	)
	return orderID, nil
}

// readCartSnapshot reads the account's cart lines in product-id order.
// Line inserts later in the transaction preserve this ordering.
func readCartSnapshot(ctx context.Context, tx *sql.Tx, accountID string) ([]cartLine, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT productid, quantity, unitprice
		FROM carts
		WHERE accountid = $1
		ORDER BY productid
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.productID, &l.quantity, &l.unitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func nextID(ctx context.Context, tx *sql.Tx, sequence, prefix string) (string, error) {
	var n int64
	if err := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT nextval('%s')", sequence)).Scan(&n); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, n), nil
}
