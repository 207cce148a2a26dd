package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// Numeric ranges match the bounds the entry form enforces on its input
// widgets.
type practiceEntryRequest struct {
	PracticeType  string  `json:"practiceType" validate:"required,oneof='Driving Range' '9 Holes' '18 Holes' Custom"`
	Location      string  `json:"location" validate:"required"`
	BallUsed      string  `json:"ballUsed"`
	AvgTempF      int     `json:"avgTempF" validate:"gte=30,lte=120"`
	FeelsLikeF    int     `json:"feelsLikeF" validate:"gte=30,lte=120"`
	UVIndex       float64 `json:"uvIndex" validate:"gte=0,lte=11"`
	WindSpeedMPH  float64 `json:"windSpeedMPH" validate:"gte=0"`
	WindGustMPH   float64 `json:"windGustMPH" validate:"gte=0"`
	WindDirection string  `json:"windDirection" validate:"required"`
	HumidityPct   int     `json:"humidityPct" validate:"gte=0,lte=100"`
	AQI           int     `json:"aqi" validate:"gte=0,lte=500"`
	Comments      string  `json:"comments"`
}

// CreatePracticeEntry appends one practice entry with its weather snapshot.
// Date and start/end times are stamped server-side in the configured
// timezone.
func (h *Handler) CreatePracticeEntry(c echo.Context) error {
	var req practiceEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Location = strings.TrimSpace(req.Location)
	req.WindDirection = strings.TrimSpace(strings.ToUpper(req.WindDirection))

	if err := h.validate.Struct(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fe.Field()
			}
			return echo.NewHTTPError(http.StatusBadRequest,
				"invalid or missing fields: "+strings.Join(fields, ", "))
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	now := h.now()
	entry := &models.PracticeEntry{
		Date:          now.Format("2006-01-02"),
		StartTime:     now.Format("15:04"),
		EndTime:       now.Format("15:04"),
		PracticeType:  req.PracticeType,
		Location:      req.Location,
		BallUsed:      optional(req.BallUsed),
		AvgTempF:      req.AvgTempF,
		FeelsLikeF:    req.FeelsLikeF,
		UVIndex:       req.UVIndex,
		WindSpeedMPH:  req.WindSpeedMPH,
		WindGustMPH:   req.WindGustMPH,
		WindDirection: req.WindDirection,
		HumidityPct:   req.HumidityPct,
		AQI:           req.AQI,
		Comments:      optional(req.Comments),
	}

	if err := h.practice.Append(c.Request().Context(), entry); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// ListPracticeEntries returns every practice entry in insertion order.
func (h *Handler) ListPracticeEntries(c echo.Context) error {
	entries, err := h.practice.ReadAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if entries == nil {
		entries = []models.PracticeEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
