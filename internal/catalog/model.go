package catalog

import "github.com/shopspring/decimal"

type Tyre struct {
	ItemID      string          `json:"itemid"`
	BrandID     string          `json:"brandid"`
	Description string          `json:"description"`
	CarType     string          `json:"cartype"`
	TyreSize    string          `json:"tyresize"`
	UnitPrice   decimal.Decimal `json:"unitprice"`
	Stock       int             `json:"stockunit"`
	Status      string          `json:"status"`
}

type ServiceItem struct {
	ServiceID   string          `json:"serviceid"`
	ServiceType string          `json:"typeid"`
	Description string          `json:"description"`
	CarType     string          `json:"cartype"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
}

type Brand struct {
	BrandID   string `json:"brandid"`
	BrandName string `json:"brandname"`
}

type PaymentMethod struct {
	MethodID    string `json:"methodid"`
	Description string `json:"description"`
}

// Product is the price/description snapshot the cart and checkout need,
// regardless of whether the id resolves to a tyre or a service.
type Product struct {
	ProductID   string          `json:"productid"`
	UnitPrice   decimal.Decimal `json:"unitprice"`
	Description string          `json:"description"`
}
