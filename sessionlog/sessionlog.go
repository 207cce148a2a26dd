// Package sessionlog implements the practice-session core: session identity,
// per-session shot sequencing, swing validation and the direction summary.
// It performs no I/O; callers read from and append to a row store around it.
package sessionlog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// ErrSessionExpired is returned by RecordSwing once a session's time window
// has elapsed.
var ErrSessionExpired = errors.New("session expired")

// ValidationError reports a missing or out-of-range field on submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ScopePolicy selects which prior records count when assigning the next
// shot number.
type ScopePolicy int

const (
	// ScopeSession numbers shots within one session ID on one calendar
	// date. The date check guards against the MMDD session IDs colliding
	// across years.
	ScopeSession ScopePolicy = iota
	// ScopeLocation numbers shots across all visits to one location.
	ScopeLocation
	// ScopeGlobal numbers shots across the whole log.
	ScopeGlobal
)

// ScopeFromString maps a config value to a ScopePolicy.
func ScopeFromString(s string) (ScopePolicy, error) {
	switch s {
	case "session":
		return ScopeSession, nil
	case "location":
		return ScopeLocation, nil
	case "global":
		return ScopeGlobal, nil
	}
	return ScopeSession, fmt.Errorf("unknown shot scope %q", s)
}

// Session is the caller-owned context for one practice visit. It travels
// with each request rather than living in server state.
//
// SwingCount is the 1-based ordinal of the next swing (the counter shown in
// the session banner): 1 on a fresh session, bumped after every recorded
// swing.
type Session struct {
	ID            string        `json:"sessionID"`
	PracticeType  string        `json:"practiceType"`
	Location      string        `json:"location"`
	Date          string        `json:"date"`
	StartedAt     time.Time     `json:"startedAt"`
	Duration      time.Duration `json:"duration"` // 0 means no expiry
	SwingCount    int           `json:"swingCount"`
	LastClub      string        `json:"lastClub"`
	LastDirection string        `json:"lastDirection"`
}

// SessionID derives the identifier for a location and date: the location
// lower-cased with spaces removed, followed by the date as MMDD. Identifiers
// repeat across years for the same place and day; that collision is an
// accepted property of the format.
func SessionID(location string, day time.Time) string {
	return normalizeLocation(location) + day.Format("0102")
}

// StartSession begins a new session at the given location. The last-used
// club and direction reset to the defaults offered on the first swing form.
func StartSession(location, practiceType string, now time.Time, duration time.Duration) (*Session, error) {
	if strings.TrimSpace(location) == "" {
		return nil, invalid("location", "required")
	}
	if !validPracticeType(practiceType) {
		return nil, invalid("practiceType", "must be one of "+strings.Join(PracticeTypes, ", "))
	}

	return &Session{
		ID:            SessionID(location, now),
		PracticeType:  practiceType,
		Location:      strings.TrimSpace(location),
		Date:          now.Format("2006-01-02"),
		StartedAt:     now,
		Duration:      duration,
		SwingCount:    1,
		LastClub:      "",
		LastDirection: DirectionStraight,
	}, nil
}

// Expired reports whether the session's time window has elapsed. Sessions
// with no duration never expire.
func (s *Session) Expired(now time.Time) bool {
	return s.Duration > 0 && now.After(s.StartedAt.Add(s.Duration))
}

// NextShotNumber returns one more than the highest shot number already
// recorded in the session's scope, or 1 when the scope has no records.
// Gaps below the maximum are tolerated and never reused.
func NextShotNumber(s *Session, records []models.Swing, scope ScopePolicy) int {
	max := 0
	for i := range records {
		if !inScope(s, &records[i], scope) {
			continue
		}
		if records[i].ShotNumber > max {
			max = records[i].ShotNumber
		}
	}
	return max + 1
}

// SwingInput carries the user-supplied fields for one swing. Everything
// beyond club and direction is optional; the course-context fields apply
// only to hole-based rounds.
type SwingInput struct {
	Club        string `json:"club"`
	Direction   string `json:"direction"`
	Feel        string `json:"feel,omitempty"`
	Notes       string `json:"notes,omitempty"`
	HoleNumber  int    `json:"holeNumber,omitempty"`
	ShotOnHole  int    `json:"shotOnHole,omitempty"`
	HoleYardage int    `json:"holeYardage,omitempty"`
	Par         int    `json:"par,omitempty"`
	TeeColor    string `json:"teeColor,omitempty"`
}

// RecordSwing validates the input and builds the swing record for
// persistence. On success it updates the session's swing count and the
// last-used club/direction offered as defaults on the next swing. It never
// touches the store; appending the returned record is the caller's job.
func RecordSwing(s *Session, shotNumber int, now time.Time, in SwingInput) (*models.Swing, error) {
	if s.Expired(now) {
		return nil, ErrSessionExpired
	}
	if shotNumber < 1 {
		return nil, invalid("shotNumber", "must be >= 1")
	}
	if in.Club == "" {
		return nil, invalid("club", "required")
	}
	if !validClub(in.Club) {
		return nil, invalid("club", "must be one of "+strings.Join(Clubs, ", "))
	}
	if !validDirection(in.Direction) {
		return nil, invalid("direction", "must be one of "+strings.Join(Directions, ", "))
	}
	if in.Feel != "" && !validFeel(in.Feel) {
		return nil, invalid("feel", "must be one of "+strings.Join(Feels, ", "))
	}
	if in.HoleYardage < 0 {
		return nil, invalid("holeYardage", "must be >= 0")
	}

	if HoleBased(s.PracticeType) {
		if in.HoleNumber < 1 || in.HoleNumber > 18 {
			return nil, invalid("holeNumber", "must be between 1 and 18")
		}
		if in.ShotOnHole < 1 {
			return nil, invalid("shotOnHole", "must be >= 1")
		}
		if in.Par != 0 && in.Par != 3 && in.Par != 4 && in.Par != 5 {
			return nil, invalid("par", "must be 3, 4 or 5")
		}
		if in.TeeColor != "" && !validTeeColor(in.TeeColor) {
			return nil, invalid("teeColor", "must be one of "+strings.Join(TeeColors, ", "))
		}
	}

	sw := &models.Swing{
		SessionID:    s.ID,
		PracticeType: s.PracticeType,
		Date:         s.Date,
		Time:         now.Format("15:04:05"),
		Location:     s.Location,
		Club:         in.Club,
		ShotNumber:   shotNumber,
		Direction:    in.Direction,
		Feel:         optString(in.Feel),
		Notes:        optString(in.Notes),
		HoleYardage:  optInt(in.HoleYardage),
	}
	if HoleBased(s.PracticeType) {
		sw.HoleNumber = optInt(in.HoleNumber)
		sw.ShotOnHole = optInt(in.ShotOnHole)
		sw.Par = optInt(in.Par)
		sw.TeeColor = optString(in.TeeColor)
	}

	s.SwingCount++
	s.LastClub = in.Club
	s.LastDirection = in.Direction

	return sw, nil
}

func inScope(s *Session, rec *models.Swing, scope ScopePolicy) bool {
	switch scope {
	case ScopeGlobal:
		return true
	case ScopeLocation:
		return normalizeLocation(rec.Location) == normalizeLocation(s.Location)
	default:
		return rec.SessionID == s.ID && rec.Date == s.Date
	}
}

func normalizeLocation(location string) string {
	return strings.ReplaceAll(strings.ToLower(location), " ", "")
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
