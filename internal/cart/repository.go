package cart

import (
	"context"
	"database/sql"

	"tayarpro-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetItem(ctx context.Context, accountID, productID string) (*CartItem, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error)
	IncrementQuantity(ctx context.Context, accountID, productID string, delta int) (*CartItem, error)
	SetQuantity(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error)
	RemoveItem(ctx context.Context, accountID, productID string) error
	ListItems(ctx context.Context, accountID string) ([]CartItem, error)
	Clear(ctx context.Context, accountID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const cartColumns = `accountid, productid, quantity, unitprice, description, createdat, updatedat`

func scanCartItem(row *sql.Row) (*CartItem, error) {
	var item CartItem
	err := row.Scan(
		&item.AccountID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
		&item.Description,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetItem(ctx context.Context, accountID, productID string) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+cartColumns+`
		FROM carts
		WHERE accountid = $1 AND productid = $2
	`, accountID, productID)
	return scanCartItem(row)
}

func (r *repository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.String("accountid", params.AccountID),
		zap.String("productid", params.ProductID),
	)

	log.Debug("start create cart item")

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (accountid, productid, quantity, unitprice, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+cartColumns+`
	`,
		params.AccountID,
		params.ProductID,
		params.Quantity,
		params.UnitPrice,
		params.Description,
	)

	item, err := scanCartItem(row)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item created", zap.Int("quantity", item.Quantity))
	return item, nil
}

// IncrementQuantity adds delta to an existing line's quantity. Repeat
// adds never overwrite the stored quantity.
func (r *repository) IncrementQuantity(ctx context.Context, accountID, productID string, delta int) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET quantity = quantity + $1, updatedat = NOW()
		WHERE accountid = $2 AND productid = $3
		RETURNING `+cartColumns+`
	`, delta, accountID, productID)

	item, err := scanCartItem(row)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func (r *repository) SetQuantity(ctx context.Context, accountID, productID string, quantity int) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET quantity = $1, updatedat = NOW()
		WHERE accountid = $2 AND productid = $3
		RETURNING `+cartColumns+`
	`, quantity, accountID, productID)

	item, err := scanCartItem(row)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func (r *repository) RemoveItem(ctx context.Context, accountID, productID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE accountid = $1 AND productid = $2
	`, accountID, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ListItems returns the account's cart ordered by product id so that
// callers always observe the same line order.
func (r *repository) ListItems(ctx context.Context, accountID string) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cartColumns+`
		FROM carts
		WHERE accountid = $1
		ORDER BY productid
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.AccountID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Clear deletes every cart line for the account. Clearing an already
// empty cart is not an error.
func (r *repository) Clear(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE accountid = $1`, accountID)
	return err
}
