package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/service"
)

// AdminSettingsHandler reads and writes arbitrary settings keys.
// Writes invalidate the TTL cache so changes like maintenance mode
// take effect immediately.
type AdminSettingsHandler struct {
	Settings *service.SettingsService
}

// GetSetting returns any setting by key, not just the public
// whitelist.
func (h *AdminSettingsHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	value, err := h.Settings.Get(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"key": key, "value": value})
}

// PutSetting upserts a setting value.
func (h *AdminSettingsHandler) PutSetting(c echo.Context) error {
	key := c.Param("key")
	var req struct {
		Value string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Settings.Set(c.Request().Context(), key, req.Value); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"key": key, "value": req.Value})
}
