package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.plog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, reader *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionIn, Category: CategoryRead},
		{Timestamp: time.Now(), ConnectionID: "conn-2", Direction: DirectionOut, Category: CategoryWrite},
		{Timestamp: time.Now(), ConnectionID: "conn-3", Direction: DirectionIn, Category: CategoryState},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}

	// Verify order
	if read[0].ConnectionID != "conn-1" {
		t.Errorf("first event ConnectionID = %q, want %q", read[0].ConnectionID, "conn-1")
	}
	if read[2].ConnectionID != "conn-3" {
		t.Errorf("last event ConnectionID = %q, want %q", read[2].ConnectionID, "conn-3")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.plog")

	// Create empty file
	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderFilterByConnectionID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ConnectionID: "conn-A", Direction: DirectionIn, Category: CategoryRead},
		{Timestamp: time.Now(), ConnectionID: "conn-B", Direction: DirectionOut, Category: CategoryWrite},
		{Timestamp: time.Now(), ConnectionID: "conn-A", Direction: DirectionIn, Category: CategoryState},
		{Timestamp: time.Now(), ConnectionID: "conn-C", Direction: DirectionOut, Category: CategoryRead},
	}

	path := createTestLogFile(t, events)

	filter := Filter{ConnectionID: "conn-A"}
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}

	for _, e := range read {
		if e.ConnectionID != "conn-A" {
			t.Errorf("event has ConnectionID=%q, want %q", e.ConnectionID, "conn-A")
		}
	}
}

func TestReaderFilterByUnit(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryRead, Unit: 255},
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryRead, Unit: 12},
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryWrite, Unit: 12},
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryRead, Unit: 247},
	}

	path := createTestLogFile(t, events)

	unit := uint8(12)
	filter := Filter{Unit: &unit}
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}

	for _, e := range read {
		if e.Unit != 12 {
			t.Errorf("event has Unit=%d, want 12", e.Unit)
		}
	}
}

func TestReaderFilterByAttribute(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryRead,
			Exchange: &ExchangeEvent{Address: 0x0BB7, Count: 2, Attribute: "current_a"}},
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryRead,
			Exchange: &ExchangeEvent{Address: 0x0C83, Count: 4, Attribute: "active_energy_total"}},
		{Timestamp: time.Now(), ConnectionID: "conn-1", Direction: DirectionOut, Category: CategoryState},
	}

	path := createTestLogFile(t, events)

	filter := Filter{Attribute: "current_a"}
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if read[0].Exchange == nil || read[0].Exchange.Attribute != "current_a" {
		t.Errorf("event does not carry the filtered attribute: %+v", read[0])
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	baseTime := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	events := []Event{
		{Timestamp: baseTime.Add(-1 * time.Hour), ConnectionID: "conn-1", Direction: DirectionIn, Category: CategoryRead},
		{Timestamp: baseTime, ConnectionID: "conn-2", Direction: DirectionOut, Category: CategoryRead},
		{Timestamp: baseTime.Add(30 * time.Minute), ConnectionID: "conn-3", Direction: DirectionIn, Category: CategoryState},
		{Timestamp: baseTime.Add(2 * time.Hour), ConnectionID: "conn-4", Direction: DirectionOut, Category: CategoryRead},
	}

	path := createTestLogFile(t, events)

	start := baseTime.Add(-5 * time.Minute)
	end := baseTime.Add(1 * time.Hour)
	filter := Filter{
		TimeStart: &start,
		TimeEnd:   &end,
	}
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2 (events within time range)", len(read))
	}

	// Verify it's the middle two events
	if read[0].ConnectionID != "conn-2" {
		t.Errorf("first event ConnectionID = %q, want %q", read[0].ConnectionID, "conn-2")
	}
	if read[1].ConnectionID != "conn-3" {
		t.Errorf("second event ConnectionID = %q, want %q", read[1].ConnectionID, "conn-3")
	}
}

func TestReaderCombinedFilters(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ConnectionID: "conn-A", Direction: DirectionIn, Category: CategoryRead, Unit: 12},
		{Timestamp: time.Now(), ConnectionID: "conn-A", Direction: DirectionOut, Category: CategoryWrite, Unit: 12},
		{Timestamp: time.Now(), ConnectionID: "conn-B", Direction: DirectionIn, Category: CategoryRead, Unit: 12},
		{Timestamp: time.Now(), ConnectionID: "conn-A", Direction: DirectionIn, Category: CategoryRead, Unit: 14},
	}

	path := createTestLogFile(t, events)

	cat := CategoryRead
	unit := uint8(12)
	filter := Filter{
		ConnectionID: "conn-A",
		Category:     &cat,
		Unit:         &unit,
	}
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	// Only the first event matches all criteria
	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}

	if read[0].ConnectionID != "conn-A" || read[0].Category != CategoryRead || read[0].Unit != 12 {
		t.Error("event doesn't match all filter criteria")
	}
}
