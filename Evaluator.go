package main

import (
	"fmt"
	"formulaGrid/contracts"
	"math"
	"strconv"
)

// Evaluation is the per-transaction evaluation state: a memo of finished
// cells and the set of cells on the current resolution path. One Evaluation
// lives exactly as long as one edit; the memo both prevents recomputation and
// bounds recursion, the path set is the cycle detector. Any reference back to
// a cell still on the path closes a loop, no matter how long the chain is.
type Evaluation struct {
	store *CellStore
	grid  Grid

	memo   map[string]float64
	onPath map[string]bool
}

func NewEvaluation(store *CellStore, grid Grid) *Evaluation {
	return &Evaluation{
		store:  store,
		grid:   grid,
		memo:   map[string]float64{},
		onPath: map[string]bool{},
	}
}

// CellValue computes the value of a cell against the staging view. Empty
// cells evaluate to 0. Each cell is computed at most once per Evaluation.
func (e *Evaluation) CellValue(cellId string) (float64, error) {
	if value, ok := e.memo[cellId]; ok {
		return value, nil
	}

	if e.onPath[cellId] {
		return 0, fmt.Errorf("%w: %s", contracts.CircularReferenceError, cellId)
	}

	entry := e.store.Lookup(cellId)
	if entry == nil {
		e.memo[cellId] = 0
		return 0, nil
	}

	at, err := ParseCellId(cellId)
	if err != nil {
		return 0, err
	}

	e.onPath[cellId] = true
	value, err := e.evalNode(entry.Formula, at)
	delete(e.onPath, cellId)

	if err != nil {
		return 0, err
	}

	e.memo[cellId] = value
	return value, nil
}

func (e *Evaluation) evalNode(node Ast, at CellAddress) (float64, error) {
	switch typed := node.(type) {
	case *NumNode:
		return typed.Value, nil

	case *RefNode:
		target := at.Offset(typed.ColOffset, typed.RowOffset)
		if !e.grid.Contains(target) {
			return 0, fmt.Errorf("%w: %s refers outside of grid", contracts.ReferenceError, at)
		}
		return e.CellValue(target.String())

	case *AppNode:
		operands := make([]float64, len(typed.Operands))
		for i, operand := range typed.Operands {
			value, err := e.evalNode(operand, at)
			if err != nil {
				return 0, err
			}
			operands[i] = value
		}
		return applyOperator(typed.Op, operands), nil
	}

	panic(fmt.Sprintf("evaluator: unknown ast node %T", node))
}

// applyOperator applies an operator of the closed formula language. The
// parser guarantees arity, so a mismatch here is a contract breach, not a
// user error. Division follows IEEE-754: no divide-by-zero special case.
func applyOperator(op Operator, operands []float64) float64 {
	if op == OpSub && len(operands) == 1 {
		return -operands[0]
	}

	if len(operands) != 2 {
		panic(fmt.Sprintf("evaluator: operator %s applied to %d operands", op, len(operands)))
	}

	switch op {
	case OpAdd:
		return operands[0] + operands[1]
	case OpSub:
		return operands[0] - operands[1]
	case OpMul:
		return operands[0] * operands[1]
	case OpDiv:
		return operands[0] / operands[1]
	case OpMin:
		return math.Min(operands[0], operands[1])
	case OpMax:
		return math.Max(operands[0], operands[1])
	}

	panic(fmt.Sprintf("evaluator: unknown operator %d", uint8(op)))
}

// formatNumber renders a value the way it is reported to clients. Inf and
// NaN come out as "+Inf"/"NaN" since JSON numbers cannot carry them.
func formatNumber(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Sprintf("%v", value)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
