// internal/rcs/status.go
package rcs

import (
	"fmt"
	"strconv"
)

// Status is the controller status word with its diagnostic representations.
type Status struct {
	Word uint16
}

// Binary returns the 0b-prefixed binary form of the status word.
func (s Status) Binary() string {
	return "0b" + strconv.FormatUint(uint64(s.Word), 2)
}

func (s Status) String() string {
	return fmt.Sprintf("status_word=%d (%s)", s.Word, s.Binary())
}
