package syntax

import (
	"fmt"

	"github.com/sl-lang/sl/ast"
	"github.com/sl-lang/sl/errz"
)

// Rules reported by ProgramValidator.
const (
	RuleUnreduced        = "unreduced"
	RuleUnknownProcedure = "unknown-procedure"
	RuleUnsupported      = "unsupported"
)

// ProgramValidator reports constructs the evaluator would reject, and
// parse-stack entries left unreduced at the top level.
type ProgramValidator struct {
	procedures map[string]bool
	names      []string
}

// NewProgramValidator creates a validator that accepts calls to the given
// procedure names.
func NewProgramValidator(procedures []string) *ProgramValidator {
	v := &ProgramValidator{
		procedures: make(map[string]bool, len(procedures)),
		names:      procedures,
	}
	for _, name := range procedures {
		v.procedures[name] = true
	}
	return v
}

// Validate checks the program.
func (v *ProgramValidator) Validate(program *ast.Program) []ValidationError {
	var errs []ValidationError
	for _, node := range program.Nodes {
		if !ast.IsStatementExpression(node) {
			errs = append(errs, ValidationError{
				Rule:     RuleUnreduced,
				Message:  fmt.Sprintf("unreduced %s %q is ignored", describe(node), node.String()),
				Severity: Warning,
				Node:     node,
				Position: node.Pos(),
			})
		}
	}
	for node := range ast.Preorder(program) {
		if err := v.checkNode(node); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

func (v *ProgramValidator) checkNode(node ast.Node) *ValidationError {
	switch n := node.(type) {
	case *ast.ProcedureCall:
		if !v.procedures[n.Name] {
			return &ValidationError{
				Rule:     RuleUnknownProcedure,
				Message:  fmt.Sprintf("unknown procedure %q", n.Name),
				Severity: Error,
				Hint:     errz.FormatSuggestions(errz.SuggestSimilar(n.Name, v.names)),
				Node:     node,
				Position: node.Pos(),
			}
		}
	case *ast.Switch:
		return unsupported("switch statements", node)
	case *ast.Case:
		return unsupported("case statements", node)
	case *ast.ProcedureDef:
		return unsupported("procedure definitions", node)
	}
	return nil
}

func unsupported(what string, node ast.Node) *ValidationError {
	return &ValidationError{
		Rule:     RuleUnsupported,
		Message:  what + " are not supported",
		Severity: Error,
		Node:     node,
		Position: node.Pos(),
	}
}

func describe(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Block:
		return "block"
	case *ast.Reserved:
		return "keyword"
	case *ast.Operator:
		return n.Category.String() + " operator"
	default:
		return "token"
	}
}
