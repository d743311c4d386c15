package main

import (
	"fmt"
	"formulaGrid/contracts"
	"strings"
)

// CellAddress is a zero-based grid position. Row 0 renders as row "1",
// column 0 as "a", column 26 as "aa".
type CellAddress struct {
	Col int
	Row int
}

type Grid struct {
	Columns int
	Rows    int
}

func (g Grid) Contains(addr CellAddress) bool {
	return addr.Col >= 0 && addr.Col < g.Columns && addr.Row >= 0 && addr.Row < g.Rows
}

// ParseCellId parses a column-letters + row-number token ("a1", "BC12").
// Case-insensitive; the canonical form produced by String is lower-case.
func ParseCellId(cellId string) (CellAddress, error) {
	s := strings.ToLower(cellId)

	i := 0
	col := 0
	for ; i < len(s) && s[i] >= 'a' && s[i] <= 'z'; i++ {
		col = col*26 + int(s[i]-'a') + 1
	}

	if i == 0 || i == len(s) {
		return CellAddress{}, fmt.Errorf("%w: %s", contracts.CellIdError, cellId)
	}

	row := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return CellAddress{}, fmt.Errorf("%w: %s", contracts.CellIdError, cellId)
		}
		row = row*10 + int(s[i]-'0')
	}

	if row == 0 {
		return CellAddress{}, fmt.Errorf("%w: %s", contracts.CellIdError, cellId)
	}

	return CellAddress{Col: col - 1, Row: row - 1}, nil
}

func (a CellAddress) String() string {
	col := a.Col + 1
	letters := make([]byte, 0, 3)
	for col > 0 {
		col--
		letters = append(letters, byte('a'+col%26))
		col /= 26
	}

	for left, right := 0, len(letters)-1; left < right; left, right = left+1, right-1 {
		letters[left], letters[right] = letters[right], letters[left]
	}

	return fmt.Sprintf("%s%d", letters, a.Row+1)
}

func (a CellAddress) Offset(cols int, rows int) CellAddress {
	return CellAddress{Col: a.Col + cols, Row: a.Row + rows}
}
