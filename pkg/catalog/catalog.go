// Package catalog declares the fixed property catalog: thermal, electrical,
// and sampling parameters for a small control loop. The catalog is closed
// at build time; adding a property means adding an identifier and a
// descriptor here, and NewTable fails fast when the two drift apart.
package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/parambank/pkg/params"
)

// Property identifiers. Each identifier equals its handler's registration
// position in NewTable, so the declaration order here and the registration
// order there must match; NewTable asserts the cardinality.
const (
	TemperatureSetpoint params.ID = iota
	HighTemperatureAlarm
	SupplyVoltageLimit
	FanDutyCycle
	SampleInterval
	TelemetryEnabled

	// Count is the declared catalog cardinality. Keep last.
	Count
)

// NewTable builds the handler table for the declared catalog.
func NewTable() (*params.Table, error) {
	var handlers []params.Handler
	add := func(h params.Handler, err error) error {
		if err != nil {
			return err
		}
		handlers = append(handlers, h)
		return nil
	}

	if err := add(params.NewHandler(params.Descriptor[float32]{
		Name:     "TemperatureSetpoint",
		Key:      "temp.setpoint",
		Default:  23.0,
		Validate: params.InRange[float32](0, 100),
		Parse:    params.ParseDecimal[float32],
		Format:   params.FormatFixed[float32](2),
	})); err != nil {
		return nil, fmt.Errorf("temperature setpoint: %w", err)
	}

	if err := add(params.NewHandler(params.Descriptor[float32]{
		Name:     "HighTemperatureAlarm",
		Key:      "temp.alarm",
		Default:  80.0,
		Validate: params.InRange[float32](-50, 150),
		Parse:    params.ParseDecimal[float32],
		Format:   params.FormatFixed[float32](2),
	})); err != nil {
		return nil, fmt.Errorf("high temperature alarm: %w", err)
	}

	if err := add(params.NewHandler(params.Descriptor[int32]{
		Name:     "SupplyVoltageLimit",
		Key:      "volt.limit",
		Default:  5000, // millivolts
		Validate: params.InRange[int32](0, 24000),
		Parse:    params.ParseDecimal[int32],
		Format:   params.FormatDecimal[int32],
	})); err != nil {
		return nil, fmt.Errorf("supply voltage limit: %w", err)
	}

	if err := add(params.NewHandler(params.Descriptor[uint8]{
		Name:     "FanDutyCycle",
		Key:      "fan.duty",
		Default:  40, // percent
		Validate: params.InRange[uint8](0, 100),
		Parse:    params.ParseDecimal[uint8],
		Format:   params.FormatDecimal[uint8],
	})); err != nil {
		return nil, fmt.Errorf("fan duty cycle: %w", err)
	}

	if err := add(params.NewHandler(params.Descriptor[int64]{
		Name:     "SampleInterval",
		Key:      "sample.interval",
		Default:  1000, // milliseconds
		Validate: params.InRange[int64](10, 60000),
		Parse:    params.ParseDecimal[int64],
		Format:   params.FormatDecimal[int64],
	})); err != nil {
		return nil, fmt.Errorf("sample interval: %w", err)
	}

	if err := add(params.NewHandler(params.Descriptor[bool]{
		Name:     "TelemetryEnabled",
		Key:      "telemetry.enabled",
		Default:  false,
		Validate: func(bool) bool { return true },
		Parse:    params.ParseBool,
		Format:   params.FormatBool,
	})); err != nil {
		return nil, fmt.Errorf("telemetry enabled: %w", err)
	}

	t, err := params.NewTable(handlers...)
	if err != nil {
		return nil, err
	}
	if t.Len() != int(Count) {
		return nil, fmt.Errorf("catalog cardinality mismatch: %d handlers registered, %d identifiers declared", t.Len(), Count)
	}
	return t, nil
}

// MustTable builds the catalog table and panics on failure. A malformed
// catalog is a startup invariant violation, not a recoverable condition.
func MustTable() *params.Table {
	t, err := NewTable()
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return t
}

// NewStore builds the catalog table and an empty store over it.
func NewStore() (*params.Store, error) {
	t, err := NewTable()
	if err != nil {
		return nil, err
	}
	return params.NewStore(t), nil
}
