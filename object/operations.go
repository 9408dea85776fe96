package object

import (
	"errors"

	"github.com/sl-lang/sl/internal/convert"
	"github.com/sl-lang/sl/op"
)

// ErrDivisionByZero is returned for integer division or modulo by zero.
var ErrDivisionByZero = errors.New("division by zero")

// BinaryOp performs an arithmetic or logical operation on two objects. When
// the operand types are not covered by the promotion table, Undefined is
// returned with a nil error; callers must treat that as fatal.
func BinaryOp(opType op.BinaryOpType, a, b Object) (Object, error) {
	switch opType {
	case op.And, op.Or:
		x, ok1 := a.(*Int)
		y, ok2 := b.(*Int)
		if !ok1 || !ok2 {
			return Undefined, nil
		}
		if opType == op.And {
			return NewBool(x.IsTruthy() && y.IsTruthy()), nil
		}
		return NewBool(x.IsTruthy() || y.IsTruthy()), nil
	case op.Modulo:
		x, ok1 := a.(*Int)
		y, ok2 := b.(*Int)
		if !ok1 || !ok2 {
			return Undefined, nil
		}
		if y.value == 0 {
			return nil, ErrDivisionByZero
		}
		return NewInt(x.value % y.value), nil
	case op.Add, op.Subtract, op.Multiply, op.Divide:
		return arithmetic(opType, a, b)
	}
	return Undefined, nil
}

func arithmetic(opType op.BinaryOpType, a, b Object) (Object, error) {
	if x, ok := a.(*Int); ok {
		if y, ok := b.(*Int); ok {
			return intArithmetic(opType, x.value, y.value)
		}
	}
	x, ok1 := toFloat(a)
	y, ok2 := toFloat(b)
	if !ok1 || !ok2 {
		return Undefined, nil
	}
	switch opType {
	case op.Add:
		return NewDouble(x + y), nil
	case op.Subtract:
		return NewDouble(x - y), nil
	case op.Multiply:
		return NewDouble(x * y), nil
	default:
		return NewDouble(x / y), nil
	}
}

func intArithmetic(opType op.BinaryOpType, x, y int64) (Object, error) {
	switch opType {
	case op.Add:
		return NewInt(x + y), nil
	case op.Subtract:
		return NewInt(x - y), nil
	case op.Multiply:
		return NewInt(x * y), nil
	default:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		return NewInt(x / y), nil
	}
}

// Compare two objects using the given comparison operator. The result is Int
// 1 or 0. Uncovered operand combinations produce Undefined.
func Compare(opType op.CompareOpType, a, b Object) (Object, error) {
	switch opType {
	case op.GreaterThan, op.LessThan:
		x, ok1 := toFloat(a)
		y, ok2 := toFloat(b)
		if !ok1 || !ok2 {
			return Undefined, nil
		}
		if bothInts(a, b) {
			xi, yi := a.(*Int).value, b.(*Int).value
			if opType == op.GreaterThan {
				return NewBool(xi > yi), nil
			}
			return NewBool(xi < yi), nil
		}
		if opType == op.GreaterThan {
			return NewBool(x > y), nil
		}
		return NewBool(x < y), nil
	case op.Equal:
		if xs, ok := a.(*String); ok {
			if ys, ok := b.(*String); ok {
				return NewBool(Unquote(xs.value) == Unquote(ys.value)), nil
			}
			return Undefined, nil
		}
		if bothInts(a, b) {
			return NewBool(a.(*Int).value == b.(*Int).value), nil
		}
		x, ok1 := toFloat(a)
		y, ok2 := toFloat(b)
		if !ok1 || !ok2 {
			return Undefined, nil
		}
		return NewBool(x == y), nil
	}
	return Undefined, nil
}

func bothInts(a, b Object) bool {
	_, ok1 := a.(*Int)
	_, ok2 := b.(*Int)
	return ok1 && ok2
}

// toFloat widens Int and Double values to float64.
func toFloat(obj Object) (float64, bool) {
	switch obj := obj.(type) {
	case *Int:
		return float64(obj.value), true
	case *Double:
		return obj.value, true
	default:
		return 0, false
	}
}

// Classify converts a line of free-form text to a value by its lexical shape:
// decimal or hex digits become an Int, digits with a single dot become a
// Double and anything else becomes a String.
func Classify(text string) Object {
	switch {
	case convert.IsDecimal(text):
		if v, err := convert.DecodeDecimal(text); err == nil {
			return NewInt(v)
		}
	case convert.IsHex(text):
		if v, err := convert.DecodeHex(text); err == nil {
			return NewInt(v)
		}
	case convert.IsDouble(text):
		if v, err := convert.DecodeDouble(text); err == nil {
			return NewDouble(v)
		}
	}
	return NewString(text)
}
