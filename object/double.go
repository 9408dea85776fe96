package object

import (
	"math"
	"strconv"
)

// Double wraps float64 and implements Object.
type Double struct {
	value float64
}

// NewDouble returns a Double holding value.
func NewDouble(value float64) *Double {
	return &Double{value: value}
}

func (d *Double) Type() Type {
	return DOUBLE
}

func (d *Double) Value() float64 {
	return d.value
}

// Inspect formats the value with exactly four fractional digits. Infinities
// and NaN are written as "inf", "-inf" and "nan".
func (d *Double) Inspect() string {
	switch {
	case math.IsInf(d.value, 1):
		return "inf"
	case math.IsInf(d.value, -1):
		return "-inf"
	case math.IsNaN(d.value):
		return "nan"
	}
	return strconv.FormatFloat(d.value, 'f', 4, 64)
}

func (d *Double) String() string {
	return d.Inspect()
}

func (d *Double) Interface() interface{} {
	return d.value
}

func (d *Double) Equals(other Object) bool {
	o, ok := other.(*Double)
	return ok && o.value == d.value
}
