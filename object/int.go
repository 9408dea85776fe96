package object

import "strconv"

// Int wraps int64 and implements Object.
type Int struct {
	value int64
}

// NewInt returns an Int holding value.
func NewInt(value int64) *Int {
	return &Int{value: value}
}

// NewBool returns Int 1 for true and Int 0 for false.
func NewBool(value bool) *Int {
	if value {
		return NewInt(1)
	}
	return NewInt(0)
}

func (i *Int) Type() Type {
	return INT
}

func (i *Int) Value() int64 {
	return i.value
}

func (i *Int) Inspect() string {
	return strconv.FormatInt(i.value, 10)
}

func (i *Int) String() string {
	return i.Inspect()
}

func (i *Int) Interface() interface{} {
	return i.value
}

// IsTruthy reports whether the value is non-zero.
func (i *Int) IsTruthy() bool {
	return i.value != 0
}

func (i *Int) Equals(other Object) bool {
	o, ok := other.(*Int)
	return ok && o.value == i.value
}
