// internal/transport/errors.go
package transport

import "fmt"

// ConnectError reports a failed initial connect after retries were exhausted.
type ConnectError struct {
	Endpoint string
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("transport: connect %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// RequestError reports a socket or protocol failure mid-session.
type RequestError struct {
	Addr uint16
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("transport: request at register %d: %v", e.Addr, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ExceptionError reports an explicit Modbus exception response from the
// controller.
type ExceptionError struct {
	Addr     uint16
	Function byte
	Code     byte
}

func (e *ExceptionError) Error() string {
	return fmt.Sprintf("transport: modbus exception at register %d: fc=%d code=%d",
		e.Addr, e.Function, e.Code)
}
