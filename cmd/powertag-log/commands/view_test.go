package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/powertag-link/powertag-go/pkg/log"
)

func TestFormatReadEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	elapsed := 2333 * time.Microsecond
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionOut,
		Category:     log.CategoryRead,
		Unit:         5,
		Exchange: &log.ExchangeEvent{
			Address:   0x0BB7,
			Count:     2,
			Attribute: "current_a",
			Words:     []uint16{0x4173, 0x3333},
			Elapsed:   &elapsed,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check timestamp format
	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected RFC3339Nano timestamp, got: %s", output)
	}

	// Check connection ID (shortened)
	if !strings.Contains(output, "[conn:abc12345]") {
		t.Errorf("expected shortened connection ID, got: %s", output)
	}

	// Check direction and category
	if !strings.Contains(output, "OUT") {
		t.Errorf("expected OUT direction, got: %s", output)
	}
	if !strings.Contains(output, "READ") {
		t.Errorf("expected READ category, got: %s", output)
	}

	// Check unit
	if !strings.Contains(output, "unit 5") {
		t.Errorf("expected unit 5, got: %s", output)
	}

	// Check exchange details
	if !strings.Contains(output, "Address: 0x0bb7") {
		t.Errorf("expected register address, got: %s", output)
	}
	if !strings.Contains(output, "Attribute: current_a") {
		t.Errorf("expected attribute name, got: %s", output)
	}
	if !strings.Contains(output, "Words: 4173 3333") {
		t.Errorf("expected word payload, got: %s", output)
	}
	if !strings.Contains(output, "Duration:") {
		t.Errorf("expected Duration, got: %s", output)
	}
}

func TestFormatWriteEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 33, 0, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionOut,
		Category:     log.CategoryWrite,
		Unit:         9,
		Exchange: &log.ExchangeEvent{
			Address:   0x7D14,
			Count:     1,
			Attribute: "reset_peak_demands",
			Words:     []uint16{0x0001},
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "WRITE") {
		t.Errorf("expected WRITE category, got: %s", output)
	}
	if !strings.Contains(output, "unit 9") {
		t.Errorf("expected unit 9, got: %s", output)
	}
	if !strings.Contains(output, "Words: 0001") {
		t.Errorf("expected word payload, got: %s", output)
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 30, 0, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionIn,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityDiscovery,
			OldState: "probing",
			NewState: "resolved",
			Reason:   "synthesis table at unit 247",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check category
	if !strings.Contains(output, "STATE") {
		t.Errorf("expected STATE category, got: %s", output)
	}

	// Check entity
	if !strings.Contains(output, "DISCOVERY") {
		t.Errorf("expected DISCOVERY entity, got: %s", output)
	}

	// Check transition
	if !strings.Contains(output, "probing -> resolved") {
		t.Errorf("expected state transition, got: %s", output)
	}

	// Check reason
	if !strings.Contains(output, "synthesis table at unit 247") {
		t.Errorf("expected reason, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 35, 0, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionIn,
		Category:     log.CategoryError,
		Unit:         12,
		Error: &log.ErrorEventData{
			Message: "device exception: illegal data address",
			Context: "rated_current",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected ERROR category, got: %s", output)
	}
	if !strings.Contains(output, "Message: device exception: illegal data address") {
		t.Errorf("expected error message, got: %s", output)
	}
	if !strings.Contains(output, "Context: rated_current") {
		t.Errorf("expected error context, got: %s", output)
	}
}

func TestFilterByDirection(t *testing.T) {
	events := []log.Event{
		{Direction: log.DirectionIn, Category: log.CategoryRead},
		{Direction: log.DirectionOut, Category: log.CategoryRead},
		{Direction: log.DirectionIn, Category: log.CategoryRead},
	}

	out := log.DirectionOut
	filter := ViewFilter{Direction: &out}

	filtered := filterEvents(events, filter)
	if len(filtered) != 1 {
		t.Errorf("expected 1 event, got %d", len(filtered))
	}
	if filtered[0].Direction != log.DirectionOut {
		t.Errorf("expected out direction, got %v", filtered[0].Direction)
	}
}

func TestFilterByCategory(t *testing.T) {
	events := []log.Event{
		{Category: log.CategoryRead},
		{Category: log.CategoryWrite},
		{Category: log.CategoryProbe},
		{Category: log.CategoryState},
		{Category: log.CategoryError},
	}

	write := log.CategoryWrite
	filter := ViewFilter{Category: &write}

	filtered := filterEvents(events, filter)
	if len(filtered) != 1 {
		t.Errorf("expected 1 event, got %d", len(filtered))
	}
	if filtered[0].Category != log.CategoryWrite {
		t.Errorf("expected write category, got %v", filtered[0].Category)
	}
}

func TestFilterByUnit(t *testing.T) {
	events := []log.Event{
		{Unit: 5, Category: log.CategoryRead},
		{Unit: 9, Category: log.CategoryRead},
		{Unit: 5, Category: log.CategoryWrite},
	}

	unit := uint8(5)
	filter := ViewFilter{Unit: &unit}

	filtered := filterEvents(events, filter)
	if len(filtered) != 2 {
		t.Errorf("expected 2 events, got %d", len(filtered))
	}
	for _, e := range filtered {
		if e.Unit != 5 {
			t.Errorf("expected unit 5, got %d", e.Unit)
		}
	}
}

func TestFilterByAttribute(t *testing.T) {
	events := []log.Event{
		{Category: log.CategoryRead, Exchange: &log.ExchangeEvent{Attribute: "current_a"}},
		{Category: log.CategoryRead, Exchange: &log.ExchangeEvent{Attribute: "voltage_an"}},
		{Category: log.CategoryState},
	}

	filter := ViewFilter{Attribute: "current_a"}

	filtered := filterEvents(events, filter)
	if len(filtered) != 1 {
		t.Errorf("expected 1 event, got %d", len(filtered))
	}
	if filtered[0].Exchange.Attribute != "current_a" {
		t.Errorf("expected current_a attribute, got %s", filtered[0].Exchange.Attribute)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Direction
		wantErr  bool
	}{
		{"in", log.DirectionIn, false},
		{"IN", log.DirectionIn, false},
		{"out", log.DirectionOut, false},
		{"OUT", log.DirectionOut, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDirection(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDirection(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("parseDirection(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseDirection(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Category
		wantErr  bool
	}{
		{"read", log.CategoryRead, false},
		{"READ", log.CategoryRead, false},
		{"write", log.CategoryWrite, false},
		{"probe", log.CategoryProbe, false},
		{"state", log.CategoryState, false},
		{"error", log.CategoryError, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := parseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCategory(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("parseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseCategory(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestFormatWords(t *testing.T) {
	got := formatWords([]uint16{0xFFFF, 0x0001, 0x4B69})
	want := "ffff 0001 4b69"
	if got != want {
		t.Errorf("formatWords = %q, want %q", got, want)
	}
}
