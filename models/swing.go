package models

import "github.com/uptrace/bun"

// Swing is one logged swing within a practice session.
//
// SessionID, ShotNumber, Club and Direction are always set; everything else
// is optional and populated according to the practice type (range sessions
// carry yardage only, hole-based rounds carry the full course context).
type Swing struct {
	bun.BaseModel `bun:"table:swings,alias:s"`

	ID           int     `bun:"id,pk,autoincrement" json:"id"`
	SessionID    string  `bun:"session_id,notnull" json:"sessionID"`
	PracticeType string  `bun:"practice_type,notnull" json:"practiceType"`
	Date         string  `bun:"date,notnull,type:date" json:"date"`
	Time         string  `bun:"time,notnull" json:"time"`
	Location     string  `bun:"location,notnull" json:"location"`
	Club         string  `bun:"club,notnull" json:"club"`
	ShotNumber   int     `bun:"shot_number,notnull" json:"shotNumber"`
	Direction    string  `bun:"direction,notnull" json:"direction"`
	Feel         *string `bun:"feel" json:"feel,omitempty"`
	Notes        *string `bun:"notes" json:"notes,omitempty"`
	HoleNumber   *int    `bun:"hole_number" json:"holeNumber,omitempty"`
	ShotOnHole   *int    `bun:"shot_on_hole" json:"shotOnHole,omitempty"`
	HoleYardage  *int    `bun:"hole_yardage" json:"holeYardage,omitempty"`
	Par          *int    `bun:"par" json:"par,omitempty"`
	TeeColor     *string `bun:"tee_color" json:"teeColor,omitempty"`
}
