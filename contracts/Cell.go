package contracts

import (
	"errors"
	"fmt"
)

type Cell struct {
	CellId string `json:"cell_id"`
	Value  string `json:"value"`
	Result string `json:"result"`
}

type CellList map[string]*Cell

// UpdateSet maps a cell id to its recomputed numeric value. An edit returns
// the edited cell plus every transitive dependent, nothing else.
type UpdateSet map[string]float64

type CellRecord struct {
	CellId     string `json:"cell_id"`
	Expression string `json:"expression"`
}

type CellValueRecord struct {
	CellId     string `json:"cell_id"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

var ExpressionError = errors.New("expression error")

var SyntaxError = fmt.Errorf("%w: %s", ExpressionError, "invalid syntax")

var CircularReferenceError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")

var ReferenceError = fmt.Errorf("%w: %s", ExpressionError, "reference outside of grid")

var CellIdError = errors.New("invalid cell id")

var CellNotFoundError = errors.New("cell not found")
