package contracts

// SheetEngine is the in-memory formula engine for a single sheet. It owns the
// committed cell set and runs one edit transaction at a time: stage the edited
// cell, evaluate it and every transitive dependent, then commit or roll back.
//
// The engine does no locking. Callers must serialize mutating calls
// (Evaluate, Remove, Copy, Clear, Load) per sheet instance.
type SheetEngine interface {
	// Evaluate parses exprText, stages it for cellId and propagates the edit.
	// Returns SyntaxError before any staging, CircularReferenceError or
	// ReferenceError after rollback. On success the returned UpdateSet holds
	// the edited cell and all transitive dependents with their new values.
	Evaluate(cellId string, exprText string) (UpdateSet, error)

	// Remove clears the cell. Dependents are recomputed seeing the cell as 0
	// and returned in the UpdateSet (the removed cell itself is not included).
	Remove(cellId string) (UpdateSet, error)

	// Query returns the stored expression text and current value of a cell.
	// An empty cell yields ("", 0, nil).
	Query(cellId string) (expression string, value float64, err error)

	Dump() []CellRecord
	DumpWithValues() ([]CellValueRecord, error)
	Clear()

	// Copy rebases the source cell's formula at the destination (relative
	// references shift with the move) and then behaves as Evaluate. Returns
	// the rebased expression text stored at the destination.
	Copy(dstCellId string, srcCellId string) (expression string, updates UpdateSet, err error)

	// Load installs a persisted (cellId, exprText) pair into the committed
	// set without propagation. Used to rehydrate a sheet from storage.
	Load(cellId string, exprText string) error
}

type SheetEngineFactory func() SheetEngine
