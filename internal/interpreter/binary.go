/*
File    : golox/internal/interpreter/binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// VisitBinary implements every infix operator spec.md §4.4 names:
// arithmetic and comparison on numbers, `+` overloaded for string
// concatenation, and `==`/`!=` restricted to numeric operands per the
// Open Question resolution recorded in SPEC_FULL.md §2.
func (interp *Interpreter) VisitBinary(e *ast.Binary) (value.Value, *diagnostics.RuntimeError) {
	left, rerr := interp.evaluate(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	right, rerr := interp.evaluate(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Op.Kind {
	case token.Plus:
		return interp.add(e.Op, left, right)
	case token.Minus:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Number{Val: l.Val - r.Val}, nil
	case token.Star:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Number{Val: l.Val * r.Val}, nil
	case token.Slash:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		if r.Val == 0 {
			return nil, diagnostics.NewRuntimeError(e.Op, "Division by zero error.")
		}
		return value.Number{Val: l.Val / r.Val}, nil
	case token.Greater:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(l.Val > r.Val), nil
	case token.GreaterEqual:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(l.Val >= r.Val), nil
	case token.Less:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(l.Val < r.Val), nil
	case token.LessEqual:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(l.Val <= r.Val), nil
	case token.EqualEqual:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(value.Equal(l, r)), nil
	case token.BangEqual:
		l, r, rerr := interp.numberOperands(e.Op, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return value.Bool(!value.Equal(l, r)), nil
	}
	return nil, diagnostics.NewRuntimeError(e.Op, "Unknown binary operator %s", e.Op.Lexeme)
}

func (interp *Interpreter) numberOperands(op token.Token, left, right value.Value) (value.Number, value.Number, *diagnostics.RuntimeError) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return value.Number{}, value.Number{}, interp.formatOperandError(op)
	}
	return l, r, nil
}

// add implements `+`, overloaded for number addition and string
// concatenation (spec.md §4.4); mixing the two kinds is a runtime error.
func (interp *Interpreter) add(op token.Token, left, right value.Value) (value.Value, *diagnostics.RuntimeError) {
	if l, ok := left.(value.Number); ok {
		if r, ok := right.(value.Number); ok {
			return value.Number{Val: l.Val + r.Val}, nil
		}
	}
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return value.String{Val: l.Val + r.Val}, nil
		}
	}
	return nil, diagnostics.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}
