// Package errhttp maps domain sentinel errors to HTTP status codes and the
// fixed messages clients see. Add a case to mapError for each new domain
// sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemapi/pkg/httpx"
	itemdomain "github.com/ghuser/itemapi/services/item/domain"
)

// Public messages for mapped errors. The wrapped error chain never reaches
// the client.
const (
	MsgMissingFields = "Missing required fields: 'name' and 'description'"
	MsgItemNotFound  = "Item not found"
	MsgItemConflict  = "Item already exists"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 Internal Server Error with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	status, msg := mapError(err)
	httpx.JSONError(w, status, msg)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, itemdomain.ErrMissingFields):
		return http.StatusBadRequest, MsgMissingFields // 400
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, MsgItemNotFound // 404
	case errors.Is(err, itemdomain.ErrItemAlreadyExists):
		return http.StatusConflict, MsgItemConflict // 409
	default:
		// the error chain stays in logs; clients only see the status text
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError) // 500
	}
}
