// Package commands implements the powertag-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/powertag-link/powertag-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Direction *log.Direction
	Category  *log.Category
	Unit      *uint8
	Attribute string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [conn:id] DIRECTION CATEGORY unit
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	connID := shortenConnID(event.ConnectionID)
	dir := event.Direction.String()
	cat := event.Category.String()

	if event.Unit != 0 {
		fmt.Fprintf(w, "%s [conn:%s] %-3s %-5s unit %d\n", ts, connID, dir, cat, event.Unit)
	} else {
		fmt.Fprintf(w, "%s [conn:%s] %-3s %-5s\n", ts, connID, dir, cat)
	}

	// Type-specific details
	switch {
	case event.Exchange != nil:
		formatExchangeDetails(w, event.Exchange)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatExchangeDetails writes register exchange details.
func formatExchangeDetails(w io.Writer, ex *log.ExchangeEvent) {
	fmt.Fprintf(w, "  Address: %#04x  Count: %d\n", ex.Address, ex.Count)
	if ex.Attribute != "" {
		fmt.Fprintf(w, "  Attribute: %s\n", ex.Attribute)
	}
	if len(ex.Words) > 0 {
		fmt.Fprintf(w, "  Words: %s\n", formatWords(ex.Words))
	}
	if ex.Elapsed != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*ex.Elapsed))
	}
}

// formatWords renders register words as space-separated hex.
func formatWords(words []uint16) string {
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04x", word)
	}
	return b.String()
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// filterEvents returns events matching the filter criteria.
func filterEvents(events []log.Event, filter ViewFilter) []log.Event {
	var result []log.Event
	for _, e := range events {
		if !matchesView(e, filter) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// matchesView reports whether the event passes all view filter criteria.
func matchesView(e log.Event, filter ViewFilter) bool {
	if filter.Direction != nil && e.Direction != *filter.Direction {
		return false
	}
	if filter.Category != nil && e.Category != *filter.Category {
		return false
	}
	if filter.Unit != nil && e.Unit != *filter.Unit {
		return false
	}
	if filter.Attribute != "" {
		if e.Exchange == nil || e.Exchange.Attribute != filter.Attribute {
			return false
		}
	}
	return true
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	return parseDirection(s)
}

// parseDirection parses a direction string (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "read":
		return log.CategoryRead, nil
	case "write":
		return log.CategoryWrite, nil
	case "probe":
		return log.CategoryProbe, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be read, write, probe, state, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if !matchesView(event, filter) {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
