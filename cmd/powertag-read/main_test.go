package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/powertag-link/powertag-go/pkg/powertag"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `address: 192.168.1.20:502
units: [5, 9]
interval: 10s
synthesis_unit: 247
protocol_log: gateway.plog
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var config Config
	if err := loadConfig(path, &config); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Address != "192.168.1.20:502" {
		t.Errorf("Address = %q, want 192.168.1.20:502", config.Address)
	}
	if len(config.Units) != 2 || config.Units[0] != 5 || config.Units[1] != 9 {
		t.Errorf("Units = %v, want [5 9]", config.Units)
	}
	if config.Interval != 10*time.Second {
		t.Errorf("Interval = %v, want 10s", config.Interval)
	}
	if config.SynthesisUnit != 247 {
		t.Errorf("SynthesisUnit = %d, want 247", config.SynthesisUnit)
	}
	if config.ProtocolLog != "gateway.plog" {
		t.Errorf("ProtocolLog = %q, want gateway.plog", config.ProtocolLog)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var config Config
	if err := loadConfig("/nonexistent/config.yaml", &config); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestUnitListSet(t *testing.T) {
	var units unitList
	if err := units.Set("5"); err != nil {
		t.Fatalf("Set(5) failed: %v", err)
	}
	if err := units.Set("247"); err != nil {
		t.Fatalf("Set(247) failed: %v", err)
	}
	if len(units) != 2 || units[0] != 5 || units[1] != 247 {
		t.Errorf("units = %v, want [5 247]", units)
	}

	if err := units.Set("300"); err == nil {
		t.Error("expected error for out-of-range unit")
	}
	if err := units.Set("abc"); err == nil {
		t.Error("expected error for non-numeric unit")
	}
}

func TestAlarmSummary(t *testing.T) {
	got := alarmSummary(powertag.NewAlarmStatus(0b0100_0001))
	want := "voltage loss, undervoltage"
	if got != want {
		t.Errorf("alarmSummary = %q, want %q", got, want)
	}

	if got := alarmSummary(powertag.AlarmStatus{}); got != "none" {
		t.Errorf("alarmSummary(zero) = %q, want none", got)
	}
}
