// internal/rcs/calibrate.go
package rcs

import (
	"errors"
	"fmt"
)

// ConfirmFunc reports whether the operator has positioned the TCP at the
// given calibration point. Returning false aborts the procedure.
type ConfirmFunc func(index int, target Point) bool

// AbortError reports a calibration run the operator stopped early.
type AbortError struct {
	Confirmed int
	Total     int
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("rcs: calibration aborted after %d of %d points", e.Confirmed, e.Total)
}

// CalibrateBase walks the operator through the Base frame cone points
// (3-point method). It writes nothing to the controller; the calibration
// commit happens in the RCS HMI afterwards.
func (c *Client) CalibrateBase(confirm ConfirmFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if confirm == nil {
		return errors.New("rcs: confirm callback required")
	}
	total := len(c.cal.Cones)
	if total == 0 {
		return errors.New("rcs: no cone positions configured")
	}

	c.log.Info("starting Base frame calibration", "points", total)
	for i, p := range c.cal.Cones {
		if !confirm(i, p) {
			return &AbortError{Confirmed: i, Total: total}
		}
	}
	c.log.Info("calibration points recorded, complete calibration in the RCS HMI")
	return nil
}
