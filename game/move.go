package game

import "fmt"

// Move identifies one grid cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned by searches that did not pick a cell.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
