package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/delivery"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/gate"
)

type handler struct {
	gate gate.UseCase
}

func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, g gate.UseCase) {
	h := &handler{g}

	grp := e.Group("/marketplace")
	grp.GET("/status", h.getStatus)
	grp.POST("/pause", h.pause, authMiddleware)
	grp.POST("/unpause", h.unpause, authMiddleware)
}

func (h *handler) getStatus(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	paused, err := h.gate.IsPaused(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Paused bool `json:"paused"`
	}{paused}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) pause(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.gate.Pause(ctx, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) unpause(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.gate.Unpause(ctx, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
