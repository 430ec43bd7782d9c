// internal/transport/transport.go

// Package transport owns the single Modbus TCP connection to the RCS
// controller. It knows register geometry only; command semantics live above.
package transport

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/goburrow/modbus"
)

// connectRetries bounds the backoff loop around the initial TCP connect.
const connectRetries = 3

// Profile describes the controller endpoint.
type Profile struct {
	Endpoint string // host:port
	UnitID   uint8
	Timeout  time.Duration
}

// Conn is one live Modbus TCP session with a fixed unit id.
// It serializes wire requests; the controller answers one at a time.
type Conn struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Dial connects to the controller. The connect is retried with bounded
// exponential backoff; controllers dislike being connection-thrashed.
func Dial(p Profile) (*Conn, error) {
	if p.Endpoint == "" {
		return nil, errors.New("transport: endpoint required")
	}

	h := modbus.NewTCPClientHandler(p.Endpoint)
	h.Timeout = p.Timeout
	h.SlaveId = p.UnitID

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries)
	if err := backoff.Retry(h.Connect, policy); err != nil {
		_ = h.Close()
		return nil, &ConnectError{Endpoint: p.Endpoint, Err: err}
	}

	return &Conn{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// WriteRegister writes one holding register (FC 6).
func (c *Conn) WriteRegister(addr, value uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteSingleRegister(addr, value)
	return wrap(err, addr)
}

// WriteRegisters writes consecutive holding registers in one wire request
// (FC 16).
func (c *Conn) WriteRegisters(addr uint16, words []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteMultipleRegisters(addr, uint16(len(words)), packRegisters(words))
	return wrap(err, addr)
}

// ReadRegisters reads consecutive holding registers (FC 3).
func (c *Conn) ReadRegisters(addr, quantity uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.client.ReadHoldingRegisters(addr, quantity)
	if err != nil {
		return nil, wrap(err, addr)
	}
	if len(data) != int(quantity)*2 {
		return nil, &RequestError{
			Addr: addr,
			Err:  fmt.Errorf("short response: %d bytes for %d registers", len(data), quantity),
		}
	}
	return unpackRegisters(data), nil
}

// Close releases the TCP connection. Safe on a Conn that never connected and
// safe to call more than once.
func (c *Conn) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// wrap classifies a goburrow error into this package's taxonomy.
// An explicit Modbus exception response is distinguishable from a dead
// socket; callers care about the difference.
func wrap(err error, addr uint16) error {
	if err == nil {
		return nil
	}
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return &ExceptionError{Addr: addr, Function: me.FunctionCode, Code: me.ExceptionCode}
	}
	return &RequestError{Addr: addr, Err: err}
}

// ---- helpers (pure geometry) ----

func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
