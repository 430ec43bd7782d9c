// internal/config/validate_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// helper to build a complete valid config quickly
func valid() *Config {
	return &Config{
		RCS: RCSConfig{
			Host:      "192.168.1.50",
			Port:      502,
			TimeoutMs: 1000,
			UnitID:    1,
		},
		Registers: map[string]uint16{
			"reset_errors":   100,
			"enable_drives":  101,
			"program_number": 107,
			"start_program":  108,
			"target_x":       200,
			"target_y":       202,
			"target_z":       204,
			"status_word":    300,
		},
		Calibration: CalibrationConfig{
			HomePosition: []float64{250, 0, 300},
			ConePositions: [][]float64{
				{150, -120, 40},
				{150, 120, 40},
				{350, 0, 40},
			},
		},
		Programs: ProgramsConfig{LinearMove: 1},
	}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequiredRegister(t *testing.T) {
	for _, name := range RequiredRegisters {
		cfg := valid()
		delete(cfg.Registers, name)

		if err := Validate(cfg); err == nil {
			t.Fatalf("expected error for missing register %q, got nil", name)
		}
	}
}

func TestValidate_EmptyHost(t *testing.T) {
	cfg := valid()
	cfg.RCS.Host = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := valid()
		cfg.RCS.Port = port

		if err := Validate(cfg); err == nil {
			t.Fatalf("expected error for port %d, got nil", port)
		}
	}
}

func TestValidate_ZeroTimeout(t *testing.T) {
	cfg := valid()
	cfg.RCS.TimeoutMs = 0

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_HomePositionWrongArity(t *testing.T) {
	cfg := valid()
	cfg.Calibration.HomePosition = []float64{250, 0}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_ConePositionWrongArity(t *testing.T) {
	cfg := valid()
	cfg.Calibration.ConePositions[1] = []float64{150}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_NoConePositions(t *testing.T) {
	cfg := valid()
	cfg.Calibration.ConePositions = nil

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	const doc = `
rcs:
  host: 10.0.0.7
  port: 502
  timeout_ms: 500
  unit_id: 2
registers:
  reset_errors: 100
  enable_drives: 101
  program_number: 107
  start_program: 108
  target_x: 200
  target_y: 202
  target_z: 204
  status_word: 300
calibration:
  home_position: [250.0, 0.0, 300.0]
  cone_positions:
    - [150.0, -120.0, 40.0]
    - [150.0, 120.0, 40.0]
    - [350.0, 0.0, 40.0]
programs:
  linear_move: 1
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}

	if cfg.RCS.Host != "10.0.0.7" {
		t.Fatalf("host: got %q", cfg.RCS.Host)
	}
	if cfg.RCS.UnitID != 2 {
		t.Fatalf("unit_id: got %d", cfg.RCS.UnitID)
	}
	if cfg.Registers["target_z"] != 204 {
		t.Fatalf("target_z: got %d", cfg.Registers["target_z"])
	}
	if len(cfg.Calibration.ConePositions) != 3 {
		t.Fatalf("cone_positions: got %d", len(cfg.Calibration.ConePositions))
	}
	if cfg.Programs.LinearMove != 1 {
		t.Fatalf("linear_move: got %d", cfg.Programs.LinearMove)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rcs: [unclosed"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
