package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp wraps data in the common response envelope. Errors are
// remapped to the status code their failure condition calls for.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) ||
		errors.Is(err, domain.ErrAuctionNotExists):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAuctionExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidParams) || errors.Is(err, domain.ErrZeroAddress) ||
		errors.Is(err, domain.ErrInvalidNumberFormat) || errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoRights) || errors.Is(err, domain.ErrNotAdmin) ||
		errors.Is(err, domain.ErrInvalidSignature) || errors.Is(err, domain.ErrInvalidNonce):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrPaused) ||
		errors.Is(err, domain.ErrAuctionAlreadyStarted) ||
		errors.Is(err, domain.ErrAuctionNotFinished) ||
		errors.Is(err, domain.ErrAuctionFinished) ||
		errors.Is(err, domain.ErrSmallBidAmount) ||
		errors.Is(err, domain.ErrEmptyWinner) ||
		errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, domain.ErrReentrantCall):
		return http.StatusTooManyRequests
	default:
		return fallback
	}
}
