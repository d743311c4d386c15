package main

import (
	"fmt"
	"formulaGrid/contracts"
	"log"
	"strings"
	"sync"

	"go.etcd.io/bbolt"
)

// SheetRepository is the service layer over the per-sheet engines: it
// materializes one SheetEngine per sheet, rehydrates it from bbolt, persists
// (cellId, expression) records after successful edits and serializes mutating
// operations per sheet. The engine itself does no locking (single in-flight
// edit contract), so every engine call below runs under the sheet mutex.
type SheetRepository struct {
	db                *bbolt.DB
	serializer        contracts.CellSerializer
	engineFactory     contracts.SheetEngineFactory
	webhookDispatcher contracts.WebhookDispatcher

	mu     sync.Mutex
	sheets map[string]*sheetState
}

type sheetState struct {
	mu     sync.Mutex
	engine contracts.SheetEngine
}

func NewSheetRepository(
	db *bbolt.DB, engineFactory contracts.SheetEngineFactory,
	serializer contracts.CellSerializer, webhookDispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		serializer:        serializer,
		engineFactory:     engineFactory,
		webhookDispatcher: webhookDispatcher,
		sheets:            map[string]*sheetState{},
	}
}

func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (*contracts.Cell, contracts.UpdateSet, error) {
	sheetId = strings.ToLower(sheetId)

	sheet := s.sheet(sheetId)

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	updates, err := sheet.engine.Evaluate(cellId, value)
	if err != nil {
		return nil, nil, err
	}

	canonical, _ := ParseCellId(cellId)
	canonicalId := canonical.String()

	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(sheetId))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(canonicalId), s.serializer.Marshal(canonicalId, value))
	})
	if err != nil {
		return nil, nil, err
	}

	cells := s.cellsFromUpdates(sheet.engine, updates)
	s.notify(sheetId, cells)

	return &contracts.Cell{
		CellId: canonicalId,
		Value:  value,
		Result: formatNumber(updates[canonicalId]),
	}, updates, nil
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.Cell, error) {
	sheetId = strings.ToLower(sheetId)

	sheet, err := s.existingSheet(sheetId)
	if err != nil {
		return nil, err
	}

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	expression, value, err := sheet.engine.Query(cellId)
	if err != nil {
		return nil, err
	}

	if expression == "" {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	canonical, _ := ParseCellId(cellId)

	return &contracts.Cell{
		CellId: canonical.String(),
		Value:  expression,
		Result: formatNumber(value),
	}, nil
}

func (s *SheetRepository) GetCellList(sheetId string) (*contracts.CellList, error) {
	sheetId = strings.ToLower(sheetId)

	sheet, err := s.existingSheet(sheetId)
	if err != nil {
		return nil, err
	}

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	records, err := sheet.engine.DumpWithValues()
	if err != nil {
		return nil, err
	}

	cellList := contracts.CellList{}
	for _, record := range records {
		cellList[record.CellId] = &contracts.Cell{
			CellId: record.CellId,
			Value:  record.Expression,
			Result: record.Result,
		}
	}

	return &cellList, nil
}

func (s *SheetRepository) RemoveCell(sheetId string, cellId string) (contracts.UpdateSet, error) {
	sheetId = strings.ToLower(sheetId)

	sheet, err := s.existingSheet(sheetId)
	if err != nil {
		return nil, err
	}

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	updates, err := sheet.engine.Remove(cellId)
	if err != nil {
		return nil, err
	}

	canonical, _ := ParseCellId(cellId)

	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetId))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(canonical.String()))
	})
	if err != nil {
		return nil, err
	}

	s.notify(sheetId, s.cellsFromUpdates(sheet.engine, updates))

	return updates, nil
}

func (s *SheetRepository) CopyCell(sheetId string, dstCellId string, srcCellId string) (*contracts.Cell, contracts.UpdateSet, error) {
	sheetId = strings.ToLower(sheetId)

	sheet, err := s.existingSheet(sheetId)
	if err != nil {
		return nil, nil, err
	}

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	expression, updates, err := sheet.engine.Copy(dstCellId, srcCellId)
	if err != nil {
		return nil, nil, err
	}

	canonical, _ := ParseCellId(dstCellId)
	canonicalId := canonical.String()

	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(sheetId))
		if err != nil {
			return err
		}

		if expression == "" {
			return bucket.Delete([]byte(canonicalId))
		}
		return bucket.Put([]byte(canonicalId), s.serializer.Marshal(canonicalId, expression))
	})
	if err != nil {
		return nil, nil, err
	}

	s.notify(sheetId, s.cellsFromUpdates(sheet.engine, updates))

	return &contracts.Cell{
		CellId: canonicalId,
		Value:  expression,
		Result: formatNumber(updates[canonicalId]),
	}, updates, nil
}

func (s *SheetRepository) ClearSheet(sheetId string) error {
	sheetId = strings.ToLower(sheetId)

	sheet, err := s.existingSheet(sheetId)
	if err != nil {
		return err
	}

	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	sheet.engine.Clear()

	return s.db.Batch(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(sheetId)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(sheetId))
	})
}

// sheet returns the state for sheetId, materializing and rehydrating the
// engine on first touch.
func (s *SheetRepository) sheet(sheetId string) *sheetState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sheet, ok := s.sheets[sheetId]; ok {
		return sheet
	}

	sheet := &sheetState{engine: s.engineFactory()}
	s.loadSheet(sheetId, sheet.engine)
	s.sheets[sheetId] = sheet

	return sheet
}

// existingSheet is sheet() for read paths: a sheet nobody ever wrote to is
// reported as not found instead of being materialized.
func (s *SheetRepository) existingSheet(sheetId string) (*sheetState, error) {
	s.mu.Lock()
	if sheet, ok := s.sheets[sheetId]; ok {
		s.mu.Unlock()
		return sheet, nil
	}
	s.mu.Unlock()

	exists := false
	_ = s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket([]byte(sheetId)) != nil
		return nil
	})

	if !exists {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	return s.sheet(sheetId), nil
}

func (s *SheetRepository) loadSheet(sheetId string, engine contracts.SheetEngine) {
	_ = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetId))
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for key, data := cursor.First(); key != nil; key, data = cursor.Next() {
			cellId, expression, err := s.serializer.Unmarshal(data)
			if err == nil {
				err = engine.Load(cellId, expression)
			}
			if err != nil {
				log.Printf("sheet %s: skip stored cell %s: %s", sheetId, string(key), err)
			}
		}

		return nil
	})
}

func (s *SheetRepository) cellsFromUpdates(engine contracts.SheetEngine, updates contracts.UpdateSet) []*contracts.Cell {
	cells := make([]*contracts.Cell, 0, len(updates))
	for cellId, value := range updates {
		expression, _, err := engine.Query(cellId)
		if err != nil {
			continue
		}
		cells = append(cells, &contracts.Cell{
			CellId: cellId,
			Value:  expression,
			Result: formatNumber(value),
		})
	}

	sortByCellId(cells, func(cell *contracts.Cell) string { return cell.CellId })
	return cells
}

func (s *SheetRepository) notify(sheetId string, cells []*contracts.Cell) {
	if s.webhookDispatcher == nil || len(cells) == 0 {
		return
	}

	s.webhookDispatcher.Notify(sheetId, cells)
}
