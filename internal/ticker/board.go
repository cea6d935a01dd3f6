package ticker

import (
	"sort"
	"sync"
)

// Board holds the rendered cells. Cells that were never written read as
// the placeholder.
type Board struct {
	mu    sync.RWMutex
	cells map[string]Cell
}

func NewBoard() *Board {
	return &Board{cells: map[string]Cell{}}
}

func (b *Board) Get(key string) Cell {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if c, ok := b.cells[key]; ok {
		return c
	}
	return blank
}

// Merge overwrites the given cells and leaves every other cell alone.
func (b *Board) Merge(cells map[string]Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.merge(cells)
}

func (b *Board) merge(cells map[string]Cell) {
	for k, c := range cells {
		b.cells[k] = c
	}
}

// Rows returns the populated cells sorted by key.
func (b *Board) Rows() []Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := make([]Row, 0, len(b.cells))
	for k, c := range b.cells {
		rows = append(rows, Row{Key: k, Cell: c})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

type Row struct {
	Key string
	Cell
}
