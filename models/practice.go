package models

import "github.com/uptrace/bun"

// PracticeEntry records one practice visit's context: where, when, and a
// snapshot of the weather at the time the entry was saved.
type PracticeEntry struct {
	bun.BaseModel `bun:"table:practice_entries,alias:pe"`

	ID            int     `bun:"id,pk,autoincrement" json:"id"`
	Date          string  `bun:"date,notnull,type:date" json:"date"`
	StartTime     string  `bun:"start_time,notnull" json:"startTime"`
	EndTime       string  `bun:"end_time,notnull" json:"endTime"`
	PracticeType  string  `bun:"practice_type,notnull" json:"practiceType"`
	Location      string  `bun:"location,notnull" json:"location"`
	BallUsed      *string `bun:"ball_used" json:"ballUsed,omitempty"`
	AvgTempF      int     `bun:"avg_temp_f,notnull" json:"avgTempF"`
	FeelsLikeF    int     `bun:"feels_like_f,notnull" json:"feelsLikeF"`
	UVIndex       float64 `bun:"uv_index,notnull" json:"uvIndex"`
	WindSpeedMPH  float64 `bun:"wind_speed_mph,notnull" json:"windSpeedMPH"`
	WindGustMPH   float64 `bun:"wind_gust_mph,notnull" json:"windGustMPH"`
	WindDirection string  `bun:"wind_direction,notnull" json:"windDirection"`
	HumidityPct   int     `bun:"humidity_pct,notnull" json:"humidityPct"`
	AQI           int     `bun:"aqi,notnull" json:"aqi"`
	Comments      *string `bun:"comments" json:"comments,omitempty"`
}
