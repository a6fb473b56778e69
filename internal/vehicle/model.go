package vehicle

import "time"

type Car struct {
	CarID       string    `json:"carid"`
	AccountID   string    `json:"accountid"`
	PlateNumber string    `json:"platenumber"`
	CarBrand    string    `json:"carbrand"`
	CarModel    string    `json:"carmodel"`
	CarYear     int       `json:"caryear"`
	TyreSize    string    `json:"tyresize"`
	CarType     string    `json:"cartype"`
	AddedAt     time.Time `json:"addedat"`
}

type RegisterCarParams struct {
	PlateNumber string
	CarBrand    string
	CarModel    string
	CarYear     int
	TyreSize    string
	CarType     string
}
