package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of the tree rooted at node to w, one
// node per line.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.print(node, 0)
	return p.err
}

// Sprint returns the outline produced by Fprint as a string.
func Sprint(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node, depth int) {
	switch n := node.(type) {
	case *Program:
		p.line(depth, "Program")
		for _, child := range n.Nodes {
			p.print(child, depth+1)
		}
	case *Block:
		p.line(depth, "Block")
		for _, item := range n.Items {
			p.print(item, depth+1)
		}
	case *TermExpr:
		p.line(depth, "Term %s %s", termKind(n.Term), n.Term.String())
	case *BinaryOp:
		p.line(depth, "BinaryOp %s", n.Op.Literal)
		p.print(n.X, depth+1)
		p.print(n.Y, depth+1)
	case *ProcedureCall:
		p.line(depth, "ProcedureCall %s", n.Name)
	case *StackOp:
		p.line(depth, "StackOp %s", n.Op.Literal)
	case *Iff:
		p.line(depth, "Iff")
		p.print(n.Cond, depth+1)
		p.print(n.Body, depth+1)
	case *Terminal:
		p.line(depth, "Terminal %s %s", n.Token.Type, n.Token.Literal)
	case *Reserved:
		p.line(depth, "Reserved %s", n.Token.Literal)
	case *Operator:
		p.line(depth, "Operator %s", n.Literal)
	case nil:
		p.line(depth, "<nil>")
	default:
		p.line(depth, "%s %s", nodeType(n), n.String())
	}
}

// ToMap converts the tree rooted at node into nested maps and slices,
// suitable for JSON encoding.
func ToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}
	m := map[string]any{
		"type": nodeType(node),
		"pos":  fmt.Sprintf("%d:%d", node.Pos().LineNumber(), node.Pos().ColumnNumber()),
	}
	switch n := node.(type) {
	case *Program:
		m["nodes"] = mapAll(n.Nodes)
	case *Block:
		m["items"] = mapAll(n.Items)
	case *TermExpr:
		m["term"] = termKind(n.Term)
		m["value"] = n.Term.String()
	case *BinaryOp:
		m["op"] = n.Op.Literal
		m["x"] = ToMap(n.X)
		m["y"] = ToMap(n.Y)
	case *ProcedureCall:
		m["name"] = n.Name
	case *StackOp:
		m["op"] = n.Op.Literal
	case *Iff:
		m["cond"] = ToMap(n.Cond)
		m["body"] = ToMap(n.Body)
	default:
		m["text"] = n.String()
	}
	return m
}

func mapAll(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ToMap(n))
	}
	return out
}

func termKind(t Term) string {
	switch t.(type) {
	case *Int:
		return "Int"
	case *Double:
		return "Double"
	case *String:
		return "String"
	case *Char:
		return "Char"
	}
	return "Unknown"
}

func nodeType(n Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}
