package main

import (
	"fmt"
	"formulaGrid/contracts"
	"strings"

	exprAst "github.com/expr-lang/expr/ast"
	exprParser "github.com/expr-lang/expr/parser"
)

// FormulaParser turns expression text into the engine's Ast. The expr-lang
// parser is used as the front-end; its parse tree is lowered into the closed
// formula language (numeric literals, cell references, + - * / min max).
// Anything outside that language is a syntax error.
type FormulaParser struct {
	grid Grid
}

const FormulaPrefix = "="

func NewFormulaParser(grid Grid) *FormulaParser {
	return &FormulaParser{grid: grid}
}

// Parse parses exprText as a formula embedded in the given cell. References
// are stored relative to that cell. The leading "=" is optional: a bare
// expression ("5", "a1+1") is accepted as well.
func (p *FormulaParser) Parse(exprText string, at CellAddress) (Ast, error) {
	source := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(exprText), FormulaPrefix)))
	if source == "" {
		return nil, fmt.Errorf("%w: empty expression", contracts.SyntaxError)
	}

	tree, err := exprParser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.SyntaxError, err.Error())
	}

	return p.lower(tree.Node, at)
}

func (p *FormulaParser) lower(node exprAst.Node, at CellAddress) (Ast, error) {
	switch typed := node.(type) {
	case *exprAst.IntegerNode:
		return &NumNode{Value: float64(typed.Value)}, nil

	case *exprAst.FloatNode:
		return &NumNode{Value: typed.Value}, nil

	case *exprAst.IdentifierNode:
		return p.lowerReference(typed.Value, at)

	case *exprAst.UnaryNode:
		operand, err := p.lower(typed.Node, at)
		if err != nil {
			return nil, err
		}
		switch typed.Operator {
		case "-":
			return &AppNode{Op: OpSub, Operands: []Ast{operand}}, nil
		case "+":
			return operand, nil
		}
		return nil, fmt.Errorf("%w: unsupported unary operator %q", contracts.SyntaxError, typed.Operator)

	case *exprAst.BinaryNode:
		op, ok := binaryOperators[typed.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported operator %q", contracts.SyntaxError, typed.Operator)
		}

		left, err := p.lower(typed.Left, at)
		if err != nil {
			return nil, err
		}
		right, err := p.lower(typed.Right, at)
		if err != nil {
			return nil, err
		}

		return &AppNode{Op: op, Operands: []Ast{left, right}}, nil

	case *exprAst.CallNode:
		callee, ok := typed.Callee.(*exprAst.IdentifierNode)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported call", contracts.SyntaxError)
		}
		return p.lowerCall(callee.Value, typed.Arguments, at)

	// expr-lang recognizes min/max as builtins and parses them into a
	// dedicated node instead of a plain call.
	case *exprAst.BuiltinNode:
		return p.lowerCall(typed.Name, typed.Arguments, at)
	}

	return nil, fmt.Errorf("%w: unsupported expression", contracts.SyntaxError)
}

var binaryOperators = map[string]Operator{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
}

var callOperators = map[string]Operator{
	"min": OpMin,
	"max": OpMax,
}

func (p *FormulaParser) lowerCall(name string, arguments []exprAst.Node, at CellAddress) (Ast, error) {
	op, ok := callOperators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown function %q", contracts.SyntaxError, name)
	}

	if len(arguments) != 2 {
		return nil, fmt.Errorf("%w: %s expects 2 arguments, got %d", contracts.SyntaxError, name, len(arguments))
	}

	operands := make([]Ast, len(arguments))
	for i, argument := range arguments {
		operand, err := p.lower(argument, at)
		if err != nil {
			return nil, err
		}
		operands[i] = operand
	}

	return &AppNode{Op: op, Operands: operands}, nil
}

func (p *FormulaParser) lowerReference(token string, at CellAddress) (Ast, error) {
	target, err := ParseCellId(token)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown identifier %q", contracts.SyntaxError, token)
	}

	if !p.grid.Contains(target) {
		return nil, fmt.Errorf("%w: %s", contracts.ReferenceError, token)
	}

	return &RefNode{ColOffset: target.Col - at.Col, RowOffset: target.Row - at.Row}, nil
}
