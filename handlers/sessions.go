package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aborland123/AI-Golf-Caddie/sessionlog"
	"github.com/aborland123/AI-Golf-Caddie/store"
)

type startSessionRequest struct {
	Location     string `json:"location"`
	PracticeType string `json:"practiceType"`
}

// StartSession derives a session context for the given location and
// practice type. The context is returned to the caller, who sends it back
// with every swing; the server keeps no session state.
func (h *Handler) StartSession(c echo.Context) error {
	var req startSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := sessionlog.StartSession(req.Location, req.PracticeType, h.now(), h.cfg.SessionDuration)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, sess)
}

// httpError maps core and store errors onto HTTP statuses: validation
// failures are the caller's to fix, an expired session is a conflict, and a
// store that stayed down through the retry budget is a bad gateway.
func httpError(err error) *echo.HTTPError {
	var verr *sessionlog.ValidationError
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	case errors.Is(err, sessionlog.ErrSessionExpired):
		return echo.NewHTTPError(http.StatusConflict, "session expired, start a new session")
	case errors.Is(err, store.ErrUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
