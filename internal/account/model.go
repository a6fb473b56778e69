package account

import "time"

type Account struct {
	AccountID   string    `json:"accountid"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	PhoneNumber string    `json:"phonenumber"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipcode"`
	Gender      string    `json:"gender"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdat"`
	IsActive    string    `json:"isactive"`
}

type RegisterParams struct {
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Gender      string
	Password    string
}

type UpdateProfileParams struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	City        string
	State       string
	ZipCode     string
}
