package service

import (
	"errors"
	"fmt"
	"math"

	"fincalc/domain"
)

// ErrInvalidArgument is wrapped by every input validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("%s must be a finite number", name)
	}
	return nil
}

func checkAmount(name string, v float64, allowZero bool) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 || (!allowZero && v == 0) {
		if allowZero {
			return invalid("%s must not be negative", name)
		}
		return invalid("%s must be greater than zero", name)
	}
	if v > MaxAmount {
		return invalid("%s exceeds the maximum of %.0f", name, MaxAmount)
	}
	return nil
}

func checkYears(years, min int) error {
	if years < min {
		return invalid("years must be at least %d", min)
	}
	if years > MaxYears {
		return invalid("years exceeds the maximum of %d", MaxYears)
	}
	return nil
}

func checkRate(name string, v, lo, hi float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return invalid("%s must be between %g and %g", name, lo, hi)
	}
	return nil
}

// truncateLimit is 2^63, the smallest magnitude int64 cannot hold.
const truncateLimit = 1 << 63

// truncator converts simulated amounts to integers and keeps the first
// amount that is not finite or does not fit in an int64.
type truncator struct {
	err error
}

func (t *truncator) amount(name string, v float64) int64 {
	if t.err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= truncateLimit || v < -truncateLimit {
		t.err = invalid("%s is out of range for these inputs", name)
		return 0
	}
	return domain.Truncate(v)
}
