// Package httperrors отображает доменные ошибки в HTTP-статусы и
// стандартный JSON-конверт {"error":true,"code","message"}.
package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkreader/cardfs/internal/models"
	"github.com/inkreader/cardfs/pkg/cardproto"
)

// Write подбирает статус по сентинелам models и отправляет конверт ошибки.
func Write(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, models.ErrMalformedRequest),
		errors.Is(err, models.ErrNotDirectory),
		errors.Is(err, models.ErrRootDelete),
		errors.Is(err, models.ErrPathEscapesRoot):
		code = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(cardproto.ErrorResponse{
		Error:   true,
		Code:    code,
		Message: err.Error(),
	})
}
