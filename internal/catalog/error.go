package catalog

import "errors"

var (
	ErrTyreNotFound    = errors.New("tyre not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrProductNotFound = errors.New("product not found")
)
