package delivery

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// Mode identifies a delivery strategy.
type Mode int

const (
	// Unknown is the zero value and never produced by selection.
	Unknown Mode = iota
	Bike
	Car
	Drone
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		Unknown: "Unknown",
		Bike:    "Bike",
		Car:     "Car",
		Drone:   "Drone",
	}
}

// ParseMode resolves a mode name case-insensitively. "Unknown" is not accepted.
func ParseMode(name string) (Mode, error) {
	for m, s := range getModeStrings() {
		if m != Unknown && strings.EqualFold(s, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a delivery mode", name))
}

// Validate rejects Unknown and out-of-range values.
func (m Mode) Validate() error {
	if m != Bike && m != Car && m != Drone {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

func (m Mode) String() string {
	if s, ok := getModeStrings()[m]; ok {
		return s
	}
	return "Unknown"
}
