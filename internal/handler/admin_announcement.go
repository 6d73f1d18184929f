package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/service"
)

// AdminAnnouncementHandler sends WhatsApp broadcasts and lists the
// send history.
type AdminAnnouncementHandler struct {
	Announcements *service.AnnouncementService
}

type announcementReq struct {
	Message string   `json:"message"`
	Targets []string `json:"targets"`
}

type announcementView struct {
	ID             uint64   `json:"id"`
	Message        string   `json:"message"`
	Targets        []string `json:"targets"`
	RecipientCount int      `json:"recipient_count"`
	CreatedAt      string   `json:"created_at"`
}

// Send fans an announcement out to the selected customer groups.
func (h *AdminAnnouncementHandler) Send(c echo.Context) error {
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	a, err := h.Announcements.Send(c.Request().Context(), req.Message, req.Targets)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, announcementView{
		ID:             a.ID,
		Message:        a.Message,
		Targets:        a.Targets,
		RecipientCount: a.RecipientCount,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	})
}

// List returns past announcements, newest first.
func (h *AdminAnnouncementHandler) List(c echo.Context) error {
	history, err := h.Announcements.History(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]announcementView, 0, len(history))
	for _, a := range history {
		items = append(items, announcementView{
			ID:             a.ID,
			Message:        a.Message,
			Targets:        a.Targets,
			RecipientCount: a.RecipientCount,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
