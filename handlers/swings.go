package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aborland123/AI-Golf-Caddie/models"
	"github.com/aborland123/AI-Golf-Caddie/sessionlog"
)

type logSwingRequest struct {
	Session sessionlog.Session    `json:"session"`
	Swing   sessionlog.SwingInput `json:"swing"`
}

type logSwingResponse struct {
	Record  *models.Swing       `json:"record"`
	Session *sessionlog.Session `json:"session"`
}

// LogSwing validates a swing against its session context, assigns the next
// shot number from the stored log and appends the record. The updated
// session context is returned alongside the record. Nothing is written when
// validation fails or the session has expired.
func (h *Handler) LogSwing(c echo.Context) error {
	var req logSwingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Session.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session context is required, start a session first")
	}

	ctx := c.Request().Context()
	existing, err := h.swings.ReadAll(ctx)
	if err != nil {
		return httpError(err)
	}

	shot := sessionlog.NextShotNumber(&req.Session, existing, h.scope)
	record, err := sessionlog.RecordSwing(&req.Session, shot, h.now(), req.Swing)
	if err != nil {
		return httpError(err)
	}

	if err := h.swings.Append(ctx, record); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, logSwingResponse{Record: record, Session: &req.Session})
}

// RecentSwings returns the trailing window of a session's swings in
// insertion order.
func (h *Handler) RecentSwings(c echo.Context) error {
	sessionID := c.QueryParam("sessionID")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sessionID param not set")
	}

	records, err := h.swings.ReadAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	recent := sessionlog.Recent(records, sessionID, h.window(c))
	if recent == nil {
		recent = []models.Swing{}
	}
	return c.JSON(http.StatusOK, recent)
}

// DirectionSummary returns the share of each shot direction over the
// trailing window of a session's swings.
func (h *Handler) DirectionSummary(c echo.Context) error {
	sessionID := c.QueryParam("sessionID")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sessionID param not set")
	}

	records, err := h.swings.ReadAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sessionlog.SummarizeDirections(records, sessionID, h.window(c)))
}

func (h *Handler) window(c echo.Context) int {
	if raw := c.QueryParam("window"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return h.cfg.SummaryWindow
}
