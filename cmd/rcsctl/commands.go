// cmd/rcsctl/commands.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chikiryauxgod/eidos-robotics-neuro/internal/config"
	"github.com/chikiryauxgod/eidos-robotics-neuro/internal/rcs"
	"github.com/chikiryauxgod/eidos-robotics-neuro/internal/register"
	"github.com/chikiryauxgod/eidos-robotics-neuro/internal/transport"
)

// buildClient loads and validates configuration, dials the controller and
// assembles the sequencer. Validation runs before any network IO.
func buildClient() (*rcs.Client, *transport.Conn, error) {
	log := newLogger()

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	endpoint := fmt.Sprintf("%s:%d", cfg.RCS.Host, cfg.RCS.Port)
	conn, err := transport.Dial(transport.Profile{
		Endpoint: endpoint,
		UnitID:   cfg.RCS.UnitID,
		Timeout:  time.Duration(cfg.RCS.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info("connected to RCS via Modbus TCP", "endpoint", endpoint, "unit", cfg.RCS.UnitID)

	client, err := rcs.New(rcs.Config{
		Registers:         cfg.Registers,
		Calibration:       toCalibration(cfg.Calibration),
		LinearMoveProgram: cfg.Programs.LinearMove,
		Logger:            log,
	}, register.NewBank(conn))
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return client, conn, nil
}

func toCalibration(c config.CalibrationConfig) rcs.Calibration {
	cal := rcs.Calibration{Home: toPoint(c.HomePosition)}
	for _, p := range c.ConePositions {
		cal.Cones = append(cal.Cones, toPoint(p))
	}
	return cal
}

// toPoint assumes arity was validated.
func toPoint(v []float64) rcs.Point {
	return rcs.Point{X: v[0], Y: v[1], Z: v[2]}
}

// ---- commands ----

type resetCommand struct{}

func (*resetCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()
	return client.ResetErrors()
}

type enableCommand struct{}

func (*enableCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()
	return client.EnableDrives()
}

type startCommand struct {
	Args struct {
		Program uint16 `positional-arg-name:"program" description:"Stored program number"`
	} `positional-args:"yes" required:"yes"`
}

func (s *startCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()
	return client.StartProgram(s.Args.Program)
}

type moveCommand struct {
	Args struct {
		X float64 `positional-arg-name:"x"`
		Y float64 `positional-arg-name:"y"`
		Z float64 `positional-arg-name:"z"`
	} `positional-args:"yes" required:"yes"`
}

func (m *moveCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()
	return client.MoveToXYZ(m.Args.X, m.Args.Y, m.Args.Z)
}

type homeCommand struct{}

func (*homeCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()
	return client.GoHome()
}

type statusCommand struct{}

func (*statusCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	st, err := client.Status()
	if err != nil {
		return err
	}
	fmt.Println(st)
	return nil
}

type calibrateCommand struct{}

func (*calibrateCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	reader := bufio.NewReader(os.Stdin)
	return client.CalibrateBase(func(i int, p rcs.Point) bool {
		fmt.Printf("Move TCP to cone %d at (%.3f, %.3f, %.3f), press Enter when in position (q aborts): ",
			i+1, p.X, p.Y, p.Z)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		return strings.TrimSpace(line) != "q"
	})
}

type initCommand struct{}

// Execute runs the startup sequence the arm needs before any downstream
// consumer (e.g. a vision pipeline) takes over.
func (*initCommand) Execute([]string) error {
	client, conn, err := buildClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := client.ResetErrors(); err != nil {
		return err
	}
	if err := client.EnableDrives(); err != nil {
		return err
	}
	return client.GoHome()
}
