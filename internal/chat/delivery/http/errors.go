package http

import (
	"errors"
	"net/http"

	"restaurant-ordering-assistant/internal/chat"
	pkgErrors "restaurant-ordering-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Store, classifier and LLM failures all surface as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, chat.ErrEmptyQuery.Error())
	case errors.Is(err, chat.ErrEmptySession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, chat.ErrEmptySession.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
