package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer     = http.StatusInternalServerError
	ErrStatusClient             = http.StatusBadRequest
	ErrStatusNotFound           = http.StatusNotFound
	ErrStatusServiceUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotFound           = errors.New("Resource not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrMalformedProductID = errors.New("Invalid product ID")
	ErrStoreUnavailable   = errors.New("Database not available")
	ErrEmptyOrder         = errors.New("Order must contain at least one item")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotFound:           ErrStatusNotFound,
	ErrProductNotFound:    ErrStatusNotFound,
	ErrMalformedProductID: ErrStatusClient,
	ErrStoreUnavailable:   ErrStatusServiceUnavailable,
	ErrEmptyOrder:         ErrStatusClient,
}

// GetErrorStatusCode matches with errors.Is so that wrapped sentinels, such as
// a not-found error carrying the offending product id, still resolve.
func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}
	return ErrStatusInternalServer
}
