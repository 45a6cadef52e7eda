package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// WidgetDocument is the subset of Discord's guild widget we read.
type WidgetDocument struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PresenceCount json.RawMessage `json:"presence_count"`

	// Set by Discord on error payloads.
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// OnlineCount reads presence_count as a non-negative integer. Floats are
// truncated, numeric strings are parsed, anything else counts as 0.
func (d WidgetDocument) OnlineCount() int {
	if len(d.PresenceCount) == 0 {
		return 0
	}

	var n float64
	if err := json.Unmarshal(d.PresenceCount, &n); err != nil {
		var s string
		if err := json.Unmarshal(d.PresenceCount, &s); err != nil {
			return 0
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0
		}
	}

	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

type PresenceSnapshot struct {
	OnlineCount int `json:"onlineCount"`
}
