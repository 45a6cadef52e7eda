package models

import (
	"encoding/json"
	"testing"
)

func TestWidgetDocument_OnlineCount(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"integer", `{"presence_count":42}`, 42},
		{"absent", `{"name":"Klar"}`, 0},
		{"null", `{"presence_count":null}`, 0},
		{"float truncates", `{"presence_count":7.8}`, 7},
		{"numeric string", `{"presence_count":" 12 "}`, 12},
		{"negative clamps", `{"presence_count":-3}`, 0},
		{"huge clamps", `{"presence_count":1e12}`, 2147483647},
		{"boolean", `{"presence_count":true}`, 0},
		{"word", `{"presence_count":"many"}`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var doc WidgetDocument
			if err := json.Unmarshal([]byte(tc.body), &doc); err != nil {
				t.Fatalf("Failed to decode widget: %v", err)
			}
			if got := doc.OnlineCount(); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}
