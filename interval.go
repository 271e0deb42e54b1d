package pitchlab

import (
	"fmt"
	"math"

	"github.com/heucuva/comparison"
)

// Cents is an interval magnitude in cents, 100 cents to the semitone.
// A Cents value is always finite; the constructors reject anything else.
type Cents struct {
	value float64
}

// NewCents wraps a finite cents value.
func NewCents(value float64) (Cents, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Cents{}, fmt.Errorf("cents %v: %w", value, ErrInvalidFrequency)
	}
	return Cents{value: value}, nil
}

// Float returns the cents value.
func (c Cents) Float() float64 {
	return c.value
}

// Abs returns the non-negative magnitude.
func (c Cents) Abs() Cents {
	return Cents{value: math.Abs(c.value)}
}

// Compare orders cents numerically.
func (c Cents) Compare(rhs Cents) comparison.Spaceship {
	switch {
	case c.value < rhs.value:
		return comparison.SpaceshipRightGreater
	case c.value > rhs.value:
		return comparison.SpaceshipLeftGreater
	default:
		return comparison.SpaceshipEqual
	}
}

func (c Cents) String() string {
	return fmt.Sprintf("%v", c.value)
}

// Interval is the logarithmic distance between two frequencies.
type Interval struct {
	cents Cents
}

// NewInterval measures the interval from frequency0 to frequency1 in
// cents: positive when frequency1 is higher, negative when lower. Both
// frequencies must be positive and finite.
func NewInterval(frequency0, frequency1 float64) (Interval, error) {
	if frequency0 <= 0 || math.IsInf(frequency0, 0) || math.IsNaN(frequency0) {
		return Interval{}, fmt.Errorf("frequency %v: %w", frequency0, ErrInvalidFrequency)
	}
	if frequency1 <= 0 || math.IsInf(frequency1, 0) || math.IsNaN(frequency1) {
		return Interval{}, fmt.Errorf("frequency %v: %w", frequency1, ErrInvalidFrequency)
	}
	cents, err := NewCents(1200 * math.Log2(frequency1/frequency0))
	if err != nil {
		return Interval{}, err
	}
	return Interval{cents: cents}, nil
}

// Cents returns the interval size in cents.
func (iv Interval) Cents() Cents {
	return iv.cents
}

func (iv Interval) String() string {
	return iv.cents.String()
}
