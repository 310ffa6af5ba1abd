package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Millis is a timestamp that marshals as milliseconds since the Unix epoch.
type Millis time.Time

// MarshalJSON implements json.Marshaler for Millis.
func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(m).UnixMilli())
}

// NewMillis converts an optional time. A nil input yields nil so the field
// renders as JSON null.
func NewMillis(t *time.Time) *Millis {
	if t == nil {
		return nil
	}
	m := Millis(*t)
	return &m
}
