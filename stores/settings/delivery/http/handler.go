package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/delivery"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
)

type handler struct {
	params auction.ParamsUseCase
}

func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, params auction.ParamsUseCase) {
	h := &handler{params}

	g := e.Group("/settings")
	g.GET("/auctionParams", h.getParams)
	g.PATCH("/auctionDuration", h.setAuctionDuration, authMiddleware)
	g.PATCH("/overtimeWindow", h.setOvertimeWindow, authMiddleware)
	g.PATCH("/minPriceStep", h.setMinPriceStep, authMiddleware)
}

func (h *handler) getParams(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	res, err := h.params.Params(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setAuctionDuration(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	d, err := bindDuration(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid duration")
	}

	if err := h.params.SetAuctionDuration(ctx, caller, d); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setOvertimeWindow(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	d, err := bindDuration(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid duration")
	}

	if err := h.params.SetOvertimeWindow(ctx, caller, d); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setMinPriceStep(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Numerator int64 `json:"numerator"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.params.SetMinPriceStepNumerator(ctx, caller, p.Numerator); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// bindDuration reads {"duration":"24h"} in time.ParseDuration notation
func bindDuration(c echo.Context) (time.Duration, error) {
	type params struct {
		Duration string `json:"duration"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return 0, err
	}
	return time.ParseDuration(p.Duration)
}
