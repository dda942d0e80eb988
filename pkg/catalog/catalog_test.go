package catalog

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/parambank/pkg/params"
)

func TestTableCompleteness(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if table.Len() != int(Count) {
		t.Fatalf("Len = %d, want %d", table.Len(), Count)
	}

	tests := []struct {
		id       params.ID
		wantKey  string
		wantSize int
	}{
		{TemperatureSetpoint, "temp.setpoint", 4},
		{HighTemperatureAlarm, "temp.alarm", 4},
		{SupplyVoltageLimit, "volt.limit", 4},
		{FanDutyCycle, "fan.duty", 1},
		{SampleInterval, "sample.interval", 8},
		{TelemetryEnabled, "telemetry.enabled", 1},
	}
	for _, tt := range tests {
		h, err := table.Handler(tt.id)
		if err != nil {
			t.Fatalf("Handler(%d): %v", tt.id, err)
		}
		if h.Key() != tt.wantKey {
			t.Errorf("Handler(%d).Key = %q, want %q", tt.id, h.Key(), tt.wantKey)
		}
		if h.Size() != tt.wantSize {
			t.Errorf("Handler(%d).Size = %d, want %d", tt.id, h.Size(), tt.wantSize)
		}
		if h.Storage() != params.StorageVolatile {
			t.Errorf("Handler(%d).Storage = %v, want volatile", tt.id, h.Storage())
		}
		id, err := table.Lookup(tt.wantKey)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.wantKey, err)
		}
		if id != tt.id {
			t.Errorf("Lookup(%q) = %d, want %d", tt.wantKey, id, tt.id)
		}
	}
}

func TestMustTable(t *testing.T) {
	table := MustTable()
	if table.Len() != int(Count) {
		t.Errorf("MustTable().Len = %d, want %d", table.Len(), Count)
	}
}

func TestSeededDefaults(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	// Slots start empty; defaults are an explicit choice.
	if store.Has(TemperatureSetpoint) {
		t.Error("fresh store has a populated slot")
	}
	store.SeedDefaults()

	tests := []struct {
		id   params.ID
		want string
	}{
		{TemperatureSetpoint, "23.00"},
		{HighTemperatureAlarm, "80.00"},
		{SupplyVoltageLimit, "5000"},
		{FanDutyCycle, "40"},
		{SampleInterval, "1000"},
		{TelemetryEnabled, "false"},
	}
	for _, tt := range tests {
		text, err := store.GetText(tt.id)
		if err != nil {
			t.Fatalf("GetText(%d): %v", tt.id, err)
		}
		if text != tt.want {
			t.Errorf("default of %d = %q, want %q", tt.id, text, tt.want)
		}
	}
}

func TestSetpointTextScenario(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.SetText(TemperatureSetpoint, "37.5"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	text, err := store.GetText(TemperatureSetpoint)
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if text != "37.50" {
		t.Errorf("GetText = %q, want \"37.50\"", text)
	}
}

func TestVoltageTextScenario(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.SetText(SupplyVoltageLimit, "1015"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	text, err := store.GetText(SupplyVoltageLimit)
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if text != "1015" {
		t.Errorf("GetText = %q, want \"1015\"", text)
	}
}

func TestOutOfDomainSetpointRejected(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.SeedDefaults()

	if err := params.Set(store, TemperatureSetpoint, float32(-1234.0)); !errors.Is(err, params.ErrValidationFailed) {
		t.Fatalf("Set(-1234) error = %v, want ErrValidationFailed", err)
	}

	text, err := store.GetText(TemperatureSetpoint)
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if text != "23.00" {
		t.Errorf("default lost after rejected set: %q", text)
	}
}

func TestAlarmAcceptsNegativeTemperatures(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.SetText(HighTemperatureAlarm, "-20"); err != nil {
		t.Fatalf("SetText(-20): %v", err)
	}
	text, err := store.GetText(HighTemperatureAlarm)
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if text != "-20.00" {
		t.Errorf("GetText = %q, want \"-20.00\"", text)
	}

	if err := store.SetText(HighTemperatureAlarm, "-60"); !errors.Is(err, params.ErrValidationFailed) {
		t.Errorf("SetText(-60) error = %v, want ErrValidationFailed", err)
	}
}
