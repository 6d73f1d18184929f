package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/service"
)

// AdminPricingHandler manages per-branch daily rates.
type AdminPricingHandler struct {
	Rules service.PricingStore
}

type pricingRuleView struct {
	BranchID  uint64 `json:"branch_id"`
	IsAC      bool   `json:"is_ac"`
	DailyRate int64  `json:"daily_rate"`
}

// ListRules returns every pricing rule.
func (h *AdminPricingHandler) ListRules(c echo.Context) error {
	rules, err := h.Rules.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]pricingRuleView, 0, len(rules))
	for _, r := range rules {
		items = append(items, pricingRuleView{BranchID: r.BranchID, IsAC: r.IsAC, DailyRate: r.DailyRate})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpsertRule creates or replaces the rate for a branch and AC
// class.
func (h *AdminPricingHandler) UpsertRule(c echo.Context) error {
	var req pricingRuleView
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BranchID == 0 || req.DailyRate <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "branch_id and positive daily_rate required"})
	}
	rule := model.PricingRule{BranchID: req.BranchID, IsAC: req.IsAC, DailyRate: req.DailyRate}
	if err := h.Rules.Upsert(c.Request().Context(), rule); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, req)
}
