// Package pin enforces the kiosk PIN policy. PINs are the kiosk credential,
// separate from password login, so weak and guessable values are rejected
// before they ever reach storage.
package pin

import (
	"github.com/pkg/errors"
)

var weakPins = map[string]bool{
	"0000": true, "1111": true, "2222": true, "3333": true, "4444": true,
	"5555": true, "6666": true, "7777": true, "8888": true, "9999": true,
	"1234": true, "4321": true, "0123": true, "9876": true, "1122": true,
	"2233": true, "3344": true, "4455": true, "5566": true, "6677": true,
	"7788": true, "8899": true,
}

// Validate checks a candidate PIN against the policy: 4-6 digits, digits
// only, not on the weak list, not a sequential run.
func Validate(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return errors.New("PIN must be 4-6 digits")
	}

	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.New("PIN must contain only numbers")
		}
	}

	if weakPins[pin] {
		return errors.New("PIN is too weak. Please choose a different PIN")
	}

	if isSequential(pin) {
		return errors.New("PIN cannot be sequential (e.g. 12345)")
	}

	return nil
}

// isSequential reports whether every adjacent pair steps by the same +1 or
// -1, e.g. 2345 or 8765.
func isSequential(pin string) bool {
	step := int(pin[1]) - int(pin[0])
	if step != 1 && step != -1 {
		return false
	}
	for i := 1; i < len(pin)-1; i++ {
		if int(pin[i+1])-int(pin[i]) != step {
			return false
		}
	}
	return true
}
