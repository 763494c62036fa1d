package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bidbay/goapi/domain"
)

func respondWith(t *testing.T, data interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, data))
	return rec
}

func TestMakeJsonRespSuccess(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, MakeJsonResp(c, http.StatusOK, "ok"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"ok","status":"success"}`, rec.Body.String())
}

func TestMakeJsonRespErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrAuctionNotExists, http.StatusNotFound},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrAuctionExists, http.StatusConflict},
		{domain.ErrInvalidParams, http.StatusBadRequest},
		{domain.ErrZeroAddress, http.StatusBadRequest},
		{domain.ErrNoRights, http.StatusMethodNotAllowed},
		{domain.ErrNotAdmin, http.StatusMethodNotAllowed},
		{domain.ErrInvalidSignature, http.StatusMethodNotAllowed},
		{domain.ErrInvalidNonce, http.StatusMethodNotAllowed},
		{domain.ErrPaused, http.StatusConflict},
		{domain.ErrAuctionAlreadyStarted, http.StatusConflict},
		{domain.ErrAuctionNotFinished, http.StatusConflict},
		{domain.ErrAuctionFinished, http.StatusConflict},
		{domain.ErrSmallBidAmount, http.StatusConflict},
		{domain.ErrEmptyWinner, http.StatusConflict},
		{domain.ErrInsufficientBalance, http.StatusConflict},
		{domain.ErrReentrantCall, http.StatusTooManyRequests},
	}
	for _, c := range cases {
		rec := respondWith(t, c.err)
		assert.Equal(t, c.want, rec.Code, c.err.Error())
	}
}

func TestMakeJsonRespUnknownErrorKeepsStatus(t *testing.T) {
	rec := respondWith(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
