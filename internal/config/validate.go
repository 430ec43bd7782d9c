// internal/config/validate.go
package config

import (
	"fmt"
)

// RequiredRegisters are the register map entries every command sequence
// depends on. A map missing any of them must fail before the first command.
var RequiredRegisters = []string{
	"reset_errors",
	"enable_drives",
	"program_number",
	"start_program",
	"target_x",
	"target_y",
	"target_z",
	"status_word",
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// CONNECTION PROFILE
	// ------------------------------------------------------------

	if cfg.RCS.Host == "" {
		return fmt.Errorf("config: rcs.host required")
	}
	if cfg.RCS.Port <= 0 || cfg.RCS.Port > 65535 {
		return fmt.Errorf("config: rcs.port out of range: %d", cfg.RCS.Port)
	}
	if cfg.RCS.TimeoutMs <= 0 {
		return fmt.Errorf("config: rcs.timeout_ms must be > 0")
	}

	// ------------------------------------------------------------
	// REGISTER MAP
	// ------------------------------------------------------------

	if len(cfg.Registers) == 0 {
		return fmt.Errorf("config: registers section required")
	}
	for _, name := range RequiredRegisters {
		if _, ok := cfg.Registers[name]; !ok {
			return fmt.Errorf("config: registers missing entry %q", name)
		}
	}

	// ------------------------------------------------------------
	// CALIBRATION
	// ------------------------------------------------------------

	if len(cfg.Calibration.HomePosition) != 3 {
		return fmt.Errorf(
			"config: calibration.home_position must have 3 coordinates, got %d",
			len(cfg.Calibration.HomePosition),
		)
	}
	if len(cfg.Calibration.ConePositions) == 0 {
		return fmt.Errorf("config: calibration.cone_positions required")
	}
	for i, p := range cfg.Calibration.ConePositions {
		if len(p) != 3 {
			return fmt.Errorf(
				"config: calibration.cone_positions[%d] must have 3 coordinates, got %d",
				i, len(p),
			)
		}
	}

	return nil
}
