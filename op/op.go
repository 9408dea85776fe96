// Package op defines the operators understood by the sl evaluator.
package op

// Category groups operators by the kind of work they do.
type Category uint8

const (
	Arithmetic Category = 1
	Logical    Category = 2
	Stack      Category = 3
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case Arithmetic:
		return "arithmetic"
	case Logical:
		return "logical"
	case Stack:
		return "stack"
	default:
		return "unknown"
	}
}

// BinaryOpType describes a type of binary operation, as in an operation that
// takes two operands. For example, addition, subtraction, multiplication, etc.
type BinaryOpType uint16

const (
	Add      BinaryOpType = 1
	Subtract BinaryOpType = 2
	Multiply BinaryOpType = 3
	Divide   BinaryOpType = 4
	Modulo   BinaryOpType = 5
	And      BinaryOpType = 6
	Or       BinaryOpType = 7
)

// String returns a string representation of the binary operation.
// For example "+" for addition.
func (bop BinaryOpType) String() string {
	switch bop {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case And:
		return "&&"
	case Or:
		return "||"
	default:
		return ""
	}
}

// CompareOpType describes a type of comparison operation. For example, less
// than, greater than, equal, etc.
type CompareOpType uint16

const (
	LessThan           CompareOpType = 1
	LessThanOrEqual    CompareOpType = 2
	Equal              CompareOpType = 3
	GreaterThan        CompareOpType = 5
	GreaterThanOrEqual CompareOpType = 6
)

// String returns a string representation of the comparison operation.
// For example "<" for less than.
func (cop CompareOpType) String() string {
	switch cop {
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return ""
	}
}

// StackOpType describes an operation applied directly to the runtime stack.
type StackOpType uint16

const (
	Peek      StackOpType = 1 // ","
	Pop       StackOpType = 2 // "."
	Duplicate StackOpType = 3 // ";"
)

// String returns the source form of the stack operation.
func (sop StackOpType) String() string {
	switch sop {
	case Peek:
		return ","
	case Pop:
		return "."
	case Duplicate:
		return ";"
	default:
		return ""
	}
}

var binaryOps = map[string]BinaryOpType{
	"+":  Add,
	"-":  Subtract,
	"*":  Multiply,
	"/":  Divide,
	"%":  Modulo,
	"&&": And,
	"||": Or,
}

var compareOps = map[string]CompareOpType{
	"<":  LessThan,
	"<=": LessThanOrEqual,
	"==": Equal,
	">":  GreaterThan,
	">=": GreaterThanOrEqual,
}

var stackOps = map[string]StackOpType{
	",": Peek,
	".": Pop,
	";": Duplicate,
}

// LookupBinaryOp returns the binary operation spelled by literal.
func LookupBinaryOp(literal string) (BinaryOpType, bool) {
	bop, ok := binaryOps[literal]
	return bop, ok
}

// LookupCompareOp returns the comparison operation spelled by literal.
func LookupCompareOp(literal string) (CompareOpType, bool) {
	cop, ok := compareOps[literal]
	return cop, ok
}

// LookupStackOp returns the stack operation spelled by literal.
func LookupStackOp(literal string) (StackOpType, bool) {
	sop, ok := stackOps[literal]
	return sop, ok
}
