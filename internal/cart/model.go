package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in an account's pending-purchase list.
// The unit price and description are snapshots taken when the product
// was first added.
type CartItem struct {
	AccountID   string          `json:"accountid"`
	ProductID   string          `json:"productid"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitprice"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdat"`
	UpdatedAt   time.Time       `json:"updatedat"`
}

type CreateItemParams struct {
	AccountID   string
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	Description string
}
