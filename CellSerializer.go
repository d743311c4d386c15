package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

// CellBinarySerializer packs a (cellId, expression) record into one bbolt
// value: little-endian uint16 id length, then the id, then the raw text.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cellId string, expression string) []byte {
	idBytes := []byte(cellId)

	serializedData := make([]byte, 0, 2+len(idBytes)+len(expression))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(idBytes)))
	serializedData = append(serializedData, idBytes...)
	serializedData = append(serializedData, []byte(expression)...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cellId string, expression string, err error) {
	if len(data) < 2 {
		return "", "", fmt.Errorf("%w: should be more than 2 bytes (data: %v)", SerializerError, string(data))
	}

	idLength := binary.LittleEndian.Uint16(data)
	if len(data) < int(idLength)+2 {
		return "", "", fmt.Errorf("%w: id size is less than bytes amount (idSize: %d; data: %v)", SerializerError, idLength, string(data))
	}

	cellId = string(data[2 : idLength+2])
	expression = string(data[idLength+2:])
	return
}
