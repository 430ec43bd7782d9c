// internal/rcs/client.go

// Package rcs drives an Eidos RCS arm controller through its Modbus register
// map: trigger pulses for one-shot actions, float target registers for
// Cartesian moves, a status word for diagnostics.
package rcs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// RegisterBank is the exact contract the sequencer uses.
type RegisterBank interface {
	WriteFloat(addr uint16, v float32) error
	WriteInt(addr, v uint16) error
	ReadInt(addr uint16) (uint16, error)
}

// Point is a Cartesian position in the controller's Base frame.
type Point struct {
	X, Y, Z float64
}

// Calibration holds the named Base frame points loaded from configuration.
type Calibration struct {
	Home  Point
	Cones []Point
}

// Register map names the sequencer resolves at construction.
const (
	RegResetErrors   = "reset_errors"
	RegEnableDrives  = "enable_drives"
	RegProgramNumber = "program_number"
	RegStartProgram  = "start_program"
	RegTargetX       = "target_x"
	RegTargetY       = "target_y"
	RegTargetZ       = "target_z"
	RegStatusWord    = "status_word"
)

// DefaultSettle is the minimum time a trigger register is held high before
// release. The controller's edge detector needs the level to persist.
const DefaultSettle = 100 * time.Millisecond

// DefaultLinearMoveProgram is the RCS convention for "linear move to the
// target registers".
const DefaultLinearMoveProgram uint16 = 1

// Config carries everything the sequencer needs beyond the register bank.
type Config struct {
	Registers         map[string]uint16
	Calibration       Calibration
	LinearMoveProgram uint16        // 0 means DefaultLinearMoveProgram
	Settle            time.Duration // 0 means DefaultSettle
	Logger            *slog.Logger  // nil discards
}

// registerSet holds the resolved address of every named signal.
type registerSet struct {
	resetErrors   uint16
	enableDrives  uint16
	programNumber uint16
	startProgram  uint16
	targetX       uint16
	targetY       uint16
	targetZ       uint16
	statusWord    uint16
}

// Client is the command sequencer. One mutex covers each full command, start
// to finish; two interleaved commands could clobber a trigger mid-pulse.
type Client struct {
	mu sync.Mutex

	bank        RegisterBank
	regs        registerSet
	cal         Calibration
	moveProgram uint16
	settle      time.Duration
	hold        func(time.Duration) // swapped out in tests
	log         *slog.Logger
}

// New resolves the register map and builds a client. It performs no IO; a
// missing register name fails here, not deep inside a command.
func New(cfg Config, bank RegisterBank) (*Client, error) {
	if bank == nil {
		return nil, errors.New("rcs: register bank required")
	}

	regs, err := resolveRegisters(cfg.Registers)
	if err != nil {
		return nil, err
	}

	c := &Client{
		bank:        bank,
		regs:        regs,
		cal:         cfg.Calibration,
		moveProgram: cfg.LinearMoveProgram,
		settle:      cfg.Settle,
		hold:        time.Sleep,
		log:         cfg.Logger,
	}
	if c.moveProgram == 0 {
		c.moveProgram = DefaultLinearMoveProgram
	}
	if c.settle <= 0 {
		c.settle = DefaultSettle
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c, nil
}

func resolveRegisters(m map[string]uint16) (registerSet, error) {
	var rs registerSet

	for _, entry := range []struct {
		name string
		dst  *uint16
	}{
		{RegResetErrors, &rs.resetErrors},
		{RegEnableDrives, &rs.enableDrives},
		{RegProgramNumber, &rs.programNumber},
		{RegStartProgram, &rs.startProgram},
		{RegTargetX, &rs.targetX},
		{RegTargetY, &rs.targetY},
		{RegTargetZ, &rs.targetZ},
		{RegStatusWord, &rs.statusWord},
	} {
		addr, ok := m[entry.name]
		if !ok {
			return registerSet{}, fmt.Errorf("rcs: register map missing %q", entry.name)
		}
		*entry.dst = addr
	}

	return rs, nil
}

// ResetErrors clears latched faults and alarm states by pulsing the reset
// trigger.
func (c *Client) ResetErrors() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.pulse(c.regs.resetErrors); err != nil {
		return err
	}
	c.log.Info("errors have been reset")
	return nil
}

// EnableDrives releases motion on all axes. Level-held, not pulsed.
func (c *Client) EnableDrives() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.bank.WriteInt(c.regs.enableDrives, 1); err != nil {
		return err
	}
	c.log.Info("drives enabled")
	return nil
}

// StartProgram latches a program number and pulses the start trigger.
func (c *Client) StartProgram(id uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.startProgram(id)
}

func (c *Client) startProgram(id uint16) error {
	// The number must be latched before the controller observes the start
	// edge, or it runs whatever was there before.
	if err := c.bank.WriteInt(c.regs.programNumber, id); err != nil {
		return err
	}
	if err := c.pulse(c.regs.startProgram); err != nil {
		return err
	}
	c.log.Info("program started", "program", id)
	return nil
}

// MoveToXYZ writes a Base frame target and runs the linear move program.
// Setting a target always triggers motion; there is no set-only variant.
func (c *Client) MoveToXYZ(x, y, z float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.moveTo(Point{X: x, Y: y, Z: z})
}

func (c *Client) moveTo(p Point) error {
	if err := c.bank.WriteFloat(c.regs.targetX, float32(p.X)); err != nil {
		return err
	}
	if err := c.bank.WriteFloat(c.regs.targetY, float32(p.Y)); err != nil {
		return err
	}
	if err := c.bank.WriteFloat(c.regs.targetZ, float32(p.Z)); err != nil {
		return err
	}
	if err := c.startProgram(c.moveProgram); err != nil {
		return err
	}
	c.log.Info("move commanded", "x", p.X, "y", p.Y, "z", p.Z)
	return nil
}

// GoHome moves the arm to the calibrated home position.
func (c *Client) GoHome() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.moveTo(c.cal.Home); err != nil {
		return err
	}
	c.log.Info("returning to home position")
	return nil
}

// Status reads the controller status word.
func (c *Client) Status() (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	word, err := c.bank.ReadInt(c.regs.statusWord)
	if err != nil {
		return Status{}, err
	}
	return Status{Word: word}, nil
}

// pulse drives a trigger register high, holds the level for the settle time
// and releases it to 0 on every exit path. A latched trigger swallows the
// next edge, so the release runs even when the high write's ack is lost.
func (c *Client) pulse(addr uint16) (err error) {
	defer func() {
		if lerr := c.bank.WriteInt(addr, 0); lerr != nil && err == nil {
			err = lerr
		}
	}()

	if err = c.bank.WriteInt(addr, 1); err != nil {
		return err
	}
	c.hold(c.settle)
	return nil
}
