package main

import (
	"fmt"
	"formulaGrid/contracts"
	"sort"
)

// SheetEngine implements contracts.SheetEngine: the committed formula set of
// one sheet plus the edit transaction machinery around it.
//
// One edit runs Idle -> Staged -> Evaluating -> Committed | RolledBack.
// Only the edited cell's formula is ever committed or rolled back; dependants
// keep their stored formulas and only their derived values are recomputed.
type SheetEngine struct {
	store  *CellStore
	graph  *CellDependencyGraph
	parser *FormulaParser
	grid   Grid
}

func NewSheetEngine(grid Grid) *SheetEngine {
	return &SheetEngine{
		store:  NewCellStore(),
		graph:  NewCellDependencyGraph(),
		parser: NewFormulaParser(grid),
		grid:   grid,
	}
}

func (e *SheetEngine) Evaluate(cellId string, exprText string) (contracts.UpdateSet, error) {
	at, err := ParseCellId(cellId)
	if err != nil {
		return nil, err
	}

	// parse failures reject the edit before anything is staged
	formula, err := e.parser.Parse(exprText, at)
	if err != nil {
		return nil, err
	}

	return e.applyEdit(at, &CellEntry{Expression: exprText, Formula: formula})
}

func (e *SheetEngine) Remove(cellId string) (contracts.UpdateSet, error) {
	at, err := ParseCellId(cellId)
	if err != nil {
		return nil, err
	}

	updates, err := e.applyEdit(at, nil)
	if err != nil {
		return nil, err
	}

	// the removed cell has no value anymore; only dependants are reported
	delete(updates, at.String())
	return updates, nil
}

func (e *SheetEngine) Copy(dstCellId string, srcCellId string) (string, contracts.UpdateSet, error) {
	dst, err := ParseCellId(dstCellId)
	if err != nil {
		return "", nil, err
	}
	src, err := ParseCellId(srcCellId)
	if err != nil {
		return "", nil, err
	}

	srcEntry := e.store.Committed(src.String())
	if srcEntry == nil {
		// copying an empty cell clears the destination
		updates, err := e.Remove(dstCellId)
		return "", updates, err
	}

	// relative references shift with the move; a reference that lands
	// outside the grid rejects the copy before anything is staged
	if err = e.validateReferences(srcEntry.Formula, dst); err != nil {
		return "", nil, err
	}

	expression := srcEntry.Formula.RenderAt(dst)
	updates, err := e.applyEdit(dst, &CellEntry{Expression: expression, Formula: srcEntry.Formula})
	if err != nil {
		return "", nil, err
	}

	return expression, updates, nil
}

// applyEdit runs one edit transaction: stage the entry (nil removes the
// cell), evaluate the edited cell, propagate over the transitive dependants,
// then commit on success or roll back on a cycle/reference fault.
func (e *SheetEngine) applyEdit(at CellAddress, entry *CellEntry) (contracts.UpdateSet, error) {
	cellId := at.String()

	e.store.Stage(cellId, entry)

	updates, err := e.propagate(cellId)
	if err != nil {
		e.store.Rollback()
		return nil, err
	}

	e.store.Commit()

	if entry == nil {
		e.graph.SetDependsOn(cellId, nil)
	} else {
		e.graph.SetDependsOn(cellId, ReferencedCells(entry.Formula, at))
	}

	return updates, nil
}

// propagate evaluates the edited cell and then every transitive dependant,
// each exactly once, sharing one memo. Dependants come from the reverse-edge
// index: edits never change who references the edited cell, so the committed
// edges are valid while the edit is still staged.
func (e *SheetEngine) propagate(cellId string) (contracts.UpdateSet, error) {
	evaluation := NewEvaluation(e.store, e.grid)
	updates := contracts.UpdateSet{}

	value, err := evaluation.CellValue(cellId)
	if err != nil {
		return nil, err
	}
	updates[cellId] = value

	for _, dependant := range e.graph.TransitiveDependants(cellId) {
		value, err = evaluation.CellValue(dependant)
		if err != nil {
			return nil, err
		}
		updates[dependant] = value
	}

	return updates, nil
}

func (e *SheetEngine) Query(cellId string) (string, float64, error) {
	at, err := ParseCellId(cellId)
	if err != nil {
		return "", 0, err
	}

	canonical := at.String()

	evaluation := NewEvaluation(e.store, e.grid)
	value, err := evaluation.CellValue(canonical)
	if err != nil {
		return "", 0, err
	}

	entry := e.store.Committed(canonical)
	if entry == nil {
		return "", value, nil
	}

	return entry.Expression, value, nil
}

func (e *SheetEngine) Dump() []contracts.CellRecord {
	records := make([]contracts.CellRecord, 0, e.store.Len())
	e.store.Each(func(cellId string, entry *CellEntry) {
		records = append(records, contracts.CellRecord{CellId: cellId, Expression: entry.Expression})
	})

	sortByCellId(records, func(r contracts.CellRecord) string { return r.CellId })
	return records
}

func (e *SheetEngine) DumpWithValues() ([]contracts.CellValueRecord, error) {
	evaluation := NewEvaluation(e.store, e.grid)

	records := make([]contracts.CellValueRecord, 0, e.store.Len())
	var firstErr error
	e.store.Each(func(cellId string, entry *CellEntry) {
		value, err := evaluation.CellValue(cellId)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("cell %s: %w", cellId, err)
		}
		records = append(records, contracts.CellValueRecord{
			CellId:     cellId,
			Expression: entry.Expression,
			Result:     formatNumber(value),
		})
	})

	if firstErr != nil {
		return nil, firstErr
	}

	sortByCellId(records, func(r contracts.CellValueRecord) string { return r.CellId })
	return records, nil
}

func (e *SheetEngine) Clear() {
	e.store.Clear()
	e.graph.Clear()
}

func (e *SheetEngine) Load(cellId string, exprText string) error {
	at, err := ParseCellId(cellId)
	if err != nil {
		return err
	}

	formula, err := e.parser.Parse(exprText, at)
	if err != nil {
		return err
	}

	canonical := at.String()
	e.store.Stage(canonical, &CellEntry{Expression: exprText, Formula: formula})
	e.store.Commit()
	e.graph.SetDependsOn(canonical, ReferencedCells(formula, at))

	return nil
}

func (e *SheetEngine) validateReferences(formula Ast, at CellAddress) error {
	switch typed := formula.(type) {
	case *RefNode:
		target := at.Offset(typed.ColOffset, typed.RowOffset)
		if !e.grid.Contains(target) {
			return fmt.Errorf("%w: reference shifted outside of grid at %s", contracts.ReferenceError, at)
		}
	case *AppNode:
		for _, operand := range typed.Operands {
			if err := e.validateReferences(operand, at); err != nil {
				return err
			}
		}
	}

	return nil
}

// sortByCellId orders records row-major by grid position, not lexically,
// so a2 comes before a10.
func sortByCellId[T any](records []T, cellIdOf func(T) string) {
	sort.Slice(records, func(i, j int) bool {
		left, _ := ParseCellId(cellIdOf(records[i]))
		right, _ := ParseCellId(cellIdOf(records[j]))
		if left.Row != right.Row {
			return left.Row < right.Row
		}
		return left.Col < right.Col
	})
}
