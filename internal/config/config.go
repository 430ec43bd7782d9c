// internal/config/config.go
package config

type Config struct {
	RCS         RCSConfig         `yaml:"rcs"`
	Registers   map[string]uint16 `yaml:"registers"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Programs    ProgramsConfig    `yaml:"programs"`
}

// ---- CONNECTION PROFILE ----

type RCSConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	TimeoutMs int    `yaml:"timeout_ms"`
	UnitID    uint8  `yaml:"unit_id"`
}

// ---- CALIBRATION ----

// CalibrationConfig holds named Base frame points.
// Each point is exactly 3 coordinates (x, y, z).
type CalibrationConfig struct {
	HomePosition  []float64   `yaml:"home_position"`
	ConePositions [][]float64 `yaml:"cone_positions"`
}

// ---- PROGRAM SLOTS ----

// ProgramsConfig maps controller program conventions to slot numbers.
// linear_move is a controller-side convention, not something this client
// can validate; it defaults to slot 1 when absent.
type ProgramsConfig struct {
	LinearMove uint16 `yaml:"linear_move"`
}
