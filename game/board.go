package game

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of cell owners. Boards are never resized; the
// only mutation is Set.
type Board struct {
	rows  int
	cols  int
	cells []Player
}

func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Player, rows*cols),
	}
}

// ParseBoard reads one string per row. '.' is empty, 'X', 'B' or '1' is
// black and 'O', 'W' or '2' is white. Whitespace inside a row is ignored.
func ParseBoard(lines []string) (*Board, error) {
	rows := make([][]Player, 0, len(lines))
	for i, line := range lines {
		row := []Player{}
		for _, c := range line {
			switch c {
			case ' ', '\t':
				continue
			case '.':
				row = append(row, Empty)
			case 'X', 'x', 'B', 'b', '1':
				row = append(row, Black)
			case 'O', 'o', 'W', 'w', '2':
				row = append(row, White)
			default:
				return nil, fmt.Errorf("row %d: unexpected cell %q", i, c)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty board")
	}

	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(b.cells[r*b.cols:], row)
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.rows && m.Col >= 0 && m.Col < b.cols
}

func (b *Board) At(m Move) Player {
	if !b.InBounds(m) {
		panic(fmt.Sprintf("move %s out of bounds", m))
	}
	return b.cells[m.Row*b.cols+m.Col]
}

func (b *Board) Set(m Move, p Player) {
	if !b.InBounds(m) {
		panic(fmt.Sprintf("move %s out of bounds", m))
	}
	b.cells[m.Row*b.cols+m.Col] = p
}

// Copy returns an independent deep copy.
func (b *Board) Copy() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Play returns a copy of b with m marked for p. b is left untouched.
func (b *Board) Play(m Move, p Player) *Board {
	next := b.Copy()
	next.Set(m, p)
	return next
}

func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines renders the board in the format accepted by ParseBoard.
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	for r := 0; r < b.rows; r++ {
		var sb strings.Builder
		for c := 0; c < b.cols; c++ {
			switch b.cells[r*b.cols+c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}
