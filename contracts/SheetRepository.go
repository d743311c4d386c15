package contracts

import "errors"

type SheetRepository interface {
	SetCell(sheetId string, cellId string, value string) (*Cell, UpdateSet, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	GetCellList(sheetId string) (*CellList, error)
	RemoveCell(sheetId string, cellId string) (UpdateSet, error)
	CopyCell(sheetId string, dstCellId string, srcCellId string) (*Cell, UpdateSet, error)
	ClearSheet(sheetId string) error
}

var SheetNotFoundError = errors.New("sheet not found")
