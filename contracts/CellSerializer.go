package contracts

type CellSerializer interface {
	Marshal(cellId string, expression string) []byte
	Unmarshal([]byte) (cellId string, expression string, err error)
}
