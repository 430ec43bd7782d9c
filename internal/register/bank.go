// internal/register/bank.go
package register

import (
	"errors"
	"fmt"

	"github.com/chikiryauxgod/eidos-robotics-neuro/internal/transport"
)

// Bus abstracts the raw register operations the bank needs.
// The bank depends on word geometry only.
type Bus interface {
	WriteRegister(addr, value uint16) error
	WriteRegisters(addr uint16, words []uint16) error
	ReadRegisters(addr, quantity uint16) ([]uint16, error)
}

// Bank reads and writes semantic values over a Bus.
type Bank struct {
	bus Bus
}

func NewBank(bus Bus) *Bank {
	return &Bank{bus: bus}
}

// WriteFloat writes a 32-bit float into two consecutive registers as one
// wire request.
func (b *Bank) WriteFloat(addr uint16, v float32) error {
	words := EncodeFloat32(v)
	return b.bus.WriteRegisters(addr, words[:])
}

// WriteInt writes a single register.
func (b *Bank) WriteInt(addr, v uint16) error {
	return b.bus.WriteRegister(addr, v)
}

// ReadInt reads a single register. An explicit Modbus exception is reported
// as a ReadError naming the address; transport failures pass through
// unchanged.
func (b *Bank) ReadInt(addr uint16) (uint16, error) {
	words, err := b.bus.ReadRegisters(addr, 1)
	if err != nil {
		var exc *transport.ExceptionError
		if errors.As(err, &exc) {
			return 0, &ReadError{Addr: addr, Err: err}
		}
		return 0, err
	}
	if len(words) != 1 {
		return 0, &ReadError{Addr: addr, Err: fmt.Errorf("expected 1 word, got %d", len(words))}
	}
	return words[0], nil
}

// ReadError reports a register read the controller explicitly rejected.
type ReadError struct {
	Addr uint16
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("register: read %d: %v", e.Addr, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
