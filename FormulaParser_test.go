package main

import (
	"formulaGrid/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testGrid = Grid{Columns: 26, Rows: 100}

func TestFormulaParser_Parse(t *testing.T) {
	parser := NewFormulaParser(testGrid)
	a1, _ := ParseCellId("a1")
	b2, _ := ParseCellId("b2")

	t.Run("numeric_literals", func(t *testing.T) {
		formula, err := parser.Parse("5", a1)
		assert.NoError(t, err)
		assert.Equal(t, &NumNode{Value: 5}, formula)

		formula, err = parser.Parse("20.5", a1)
		assert.NoError(t, err)
		assert.Equal(t, &NumNode{Value: 20.5}, formula)
	})

	t.Run("optional_formula_prefix", func(t *testing.T) {
		formula, err := parser.Parse("= 5 ", a1)
		assert.NoError(t, err)
		assert.Equal(t, &NumNode{Value: 5}, formula)
	})

	t.Run("reference_is_relative_to_own_cell", func(t *testing.T) {
		formula, err := parser.Parse("b2", a1)
		assert.NoError(t, err)
		assert.Equal(t, &RefNode{ColOffset: 1, RowOffset: 1}, formula)

		formula, err = parser.Parse("b2", b2)
		assert.NoError(t, err)
		assert.Equal(t, &RefNode{ColOffset: 0, RowOffset: 0}, formula)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		upper, err := parser.Parse("=B2+C3", a1)
		assert.NoError(t, err)

		lower, err := parser.Parse("b2+c3", a1)
		assert.NoError(t, err)

		assert.Equal(t, lower, upper)
	})

	t.Run("binary_operators", func(t *testing.T) {
		testCases := map[string]Operator{
			"1+2": OpAdd,
			"1-2": OpSub,
			"1*2": OpMul,
			"1/2": OpDiv,
		}

		for source, op := range testCases {
			formula, err := parser.Parse(source, a1)
			assert.NoError(t, err, source)
			assert.Equal(t, &AppNode{Op: op, Operands: []Ast{
				&NumNode{Value: 1},
				&NumNode{Value: 2},
			}}, formula, source)
		}
	})

	t.Run("unary_minus", func(t *testing.T) {
		formula, err := parser.Parse("-(3)", a1)
		assert.NoError(t, err)
		assert.Equal(t, &AppNode{Op: OpSub, Operands: []Ast{&NumNode{Value: 3}}}, formula)

		formula, err = parser.Parse("-b2", a1)
		assert.NoError(t, err)
		assert.Equal(t, &AppNode{Op: OpSub, Operands: []Ast{&RefNode{ColOffset: 1, RowOffset: 1}}}, formula)
	})

	t.Run("min_max", func(t *testing.T) {
		formula, err := parser.Parse("min(b2, 3)", a1)
		assert.NoError(t, err)
		assert.Equal(t, &AppNode{Op: OpMin, Operands: []Ast{
			&RefNode{ColOffset: 1, RowOffset: 1},
			&NumNode{Value: 3},
		}}, formula)

		formula, err = parser.Parse("MAX(1, 2)", a1)
		assert.NoError(t, err)
		assert.Equal(t, &AppNode{Op: OpMax, Operands: []Ast{
			&NumNode{Value: 1},
			&NumNode{Value: 2},
		}}, formula)
	})

	t.Run("nested", func(t *testing.T) {
		formula, err := parser.Parse("(b2+1)*2", a1)
		assert.NoError(t, err)
		assert.Equal(t, &AppNode{Op: OpMul, Operands: []Ast{
			&AppNode{Op: OpAdd, Operands: []Ast{
				&RefNode{ColOffset: 1, RowOffset: 1},
				&NumNode{Value: 1},
			}},
			&NumNode{Value: 2},
		}}, formula)
	})

	t.Run("syntax_errors", func(t *testing.T) {
		sources := []string{
			"",
			"=",
			"5+",
			"(1",
			"awesome",    // unknown identifier
			"1 == 2",     // operator outside the language
			"sum(1,2)",   // unknown function
			"min(1)",     // wrong arity
			"min(1,2,3)", // wrong arity
			"\"text\"",   // strings are not part of the language
			"true",
		}

		for _, source := range sources {
			_, err := parser.Parse(source, a1)
			assert.ErrorIs(t, err, contracts.SyntaxError, source)
		}
	})

	t.Run("reference_outside_of_grid", func(t *testing.T) {
		_, err := parser.Parse("zz1", a1)
		assert.ErrorIs(t, err, contracts.ReferenceError)

		_, err = parser.Parse("a1000", a1)
		assert.ErrorIs(t, err, contracts.ReferenceError)
	})
}
