package models

import (
	"bytes"
	"encoding/json"
	"time"
)

type Exercise struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// LogFilter selects a user's exercises. Nil bounds are open.
type LogFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int // 0 means no cap
}

// FlexString accepts either a JSON string or a bare JSON number, so
// clients may send "duration": 30 as well as "duration": "30".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

type CreateExerciseRequest struct {
	Description string     `json:"description" form:"description" validate:"required"`
	Duration    FlexString `json:"duration" form:"duration" validate:"required,leadingint"`
	Date        string     `json:"date" form:"date"`
}

type LogQuery struct {
	From  string `query:"from"`
	To    string `query:"to"`
	Limit string `query:"limit"`
}

type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
