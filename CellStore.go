package main

// CellEntry is one stored formula: the text the user supplied plus its parse.
type CellEntry struct {
	Expression string
	Formula    Ast
}

// CellStore holds the committed cell set plus a single pending-change slot.
// Staging is the committed view with at most one cell overridden, so staging
// and committed coincide whenever no transaction is active, and Rollback is
// total by construction: dropping the slot cannot leave a dangling entry.
type CellStore struct {
	committed map[string]*CellEntry

	pendingCellId string
	pendingEntry  *CellEntry // nil means staged removal
	active        bool
}

func NewCellStore() *CellStore {
	return &CellStore{committed: map[string]*CellEntry{}}
}

// Stage opens a transaction for cellId. A nil entry stages the cell's
// removal. The store is not reentrant: staging while a transaction is active
// is a caller contract breach.
func (s *CellStore) Stage(cellId string, entry *CellEntry) {
	if s.active {
		panic("cell store: overlapping transactions (edit in flight for " + s.pendingCellId + ")")
	}

	s.pendingCellId = cellId
	s.pendingEntry = entry
	s.active = true
}

// Commit merges the pending slot into committed and closes the transaction.
func (s *CellStore) Commit() {
	if !s.active {
		panic("cell store: commit without staged entry")
	}

	if s.pendingEntry == nil {
		delete(s.committed, s.pendingCellId)
	} else {
		s.committed[s.pendingCellId] = s.pendingEntry
	}

	s.reset()
}

// Rollback discards the pending slot; committed is untouched.
func (s *CellStore) Rollback() {
	if !s.active {
		panic("cell store: rollback without staged entry")
	}

	s.reset()
}

func (s *CellStore) reset() {
	s.pendingCellId = ""
	s.pendingEntry = nil
	s.active = false
}

// Lookup reads through the staging view: the pending cell if one is staged,
// committed otherwise. A nil result means the cell is empty.
func (s *CellStore) Lookup(cellId string) *CellEntry {
	if s.active && cellId == s.pendingCellId {
		return s.pendingEntry
	}

	return s.committed[cellId]
}

func (s *CellStore) Committed(cellId string) *CellEntry {
	return s.committed[cellId]
}

func (s *CellStore) Len() int {
	return len(s.committed)
}

func (s *CellStore) Each(visit func(cellId string, entry *CellEntry)) {
	for cellId, entry := range s.committed {
		visit(cellId, entry)
	}
}

func (s *CellStore) Clear() {
	if s.active {
		panic("cell store: clear with edit in flight")
	}

	s.committed = map[string]*CellEntry{}
}
