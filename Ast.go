package main

import (
	"fmt"
	"strconv"
	"strings"
)

type Operator uint8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMin
	OpMax
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	}

	panic(fmt.Sprintf("ast: unknown operator %d", uint8(op)))
}

// Ast is a parsed formula. Nodes are immutable and position-independent:
// references are stored as offsets from the cell the formula lives in, so the
// same tree can be evaluated (or rendered) at any base cell.
type Ast interface {
	// RenderAt renders the node back to expression text with references made
	// absolute relative to the given base cell.
	RenderAt(base CellAddress) string

	astNode()
}

type NumNode struct {
	Value float64
}

// RefNode is a relative cell reference. The absolute target is
// base.Offset(ColOffset, RowOffset), computed at evaluation time.
type RefNode struct {
	ColOffset int
	RowOffset int
}

type AppNode struct {
	Op       Operator
	Operands []Ast
}

func (n *NumNode) astNode() {}
func (n *RefNode) astNode() {}
func (n *AppNode) astNode() {}

func (n *NumNode) RenderAt(_ CellAddress) string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (n *RefNode) RenderAt(base CellAddress) string {
	return base.Offset(n.ColOffset, n.RowOffset).String()
}

func (n *AppNode) RenderAt(base CellAddress) string {
	switch n.Op {
	case OpMin, OpMax:
		operands := make([]string, len(n.Operands))
		for i, operand := range n.Operands {
			operands[i] = operand.RenderAt(base)
		}
		return n.Op.String() + "(" + strings.Join(operands, ",") + ")"

	case OpSub:
		if len(n.Operands) == 1 {
			return "-(" + n.Operands[0].RenderAt(base) + ")"
		}
	}

	return n.renderOperand(n.Operands[0], base) + n.Op.String() + n.renderOperand(n.Operands[1], base)
}

// renderOperand parenthesizes nested applications so the rendered text
// re-parses to the same tree regardless of operator precedence.
func (n *AppNode) renderOperand(operand Ast, base CellAddress) string {
	if app, ok := operand.(*AppNode); ok {
		switch app.Op {
		case OpAdd, OpSub, OpMul, OpDiv:
			if len(app.Operands) == 2 {
				return "(" + app.RenderAt(base) + ")"
			}
		}
	}

	return operand.RenderAt(base)
}

// ReferencedCells resolves every reference in the formula against the base
// cell and returns the absolute target ids. Duplicates are collapsed.
func ReferencedCells(formula Ast, base CellAddress) []string {
	targets := make([]string, 0, 4)
	seen := map[string]bool{}

	var walk func(node Ast)
	walk = func(node Ast) {
		switch typed := node.(type) {
		case *RefNode:
			target := base.Offset(typed.ColOffset, typed.RowOffset).String()
			if !seen[target] {
				seen[target] = true
				targets = append(targets, target)
			}
		case *AppNode:
			for _, operand := range typed.Operands {
				walk(operand)
			}
		}
	}
	walk(formula)

	return targets
}
