package blocks

import "fmt"

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Editor holds the draft block sequence of a post being edited.
// Indices are positional and shift on every insert, delete and move;
// anything referring to a block across edits must hold its id.
type Editor struct {
	blocks []Block
}

func NewEditor(initial []Block) *Editor {
	return &Editor{blocks: append([]Block(nil), initial...)}
}

// Blocks returns a copy of the current sequence in order.
func (e *Editor) Blocks() []Block {
	return append([]Block(nil), e.blocks...)
}

func (e *Editor) Len() int {
	return len(e.blocks)
}

// Add appends a new block of the given type with default data and a
// fresh id, and returns it.
func (e *Editor) Add(t Type) Block {
	b := New(t)
	e.blocks = append(e.blocks, b)
	return b
}

// Update replaces the data payload at index, preserving id and type.
func (e *Editor) Update(index int, data Data) error {
	if index < 0 || index >= len(e.blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}
	e.blocks[index].Data = data
	return nil
}

// Delete removes the block at index, shifting subsequent blocks down.
func (e *Editor) Delete(index int) error {
	if index < 0 || index >= len(e.blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}
	e.blocks = append(e.blocks[:index], e.blocks[index+1:]...)
	return nil
}

// Move swaps the block at index with its neighbor in the given
// direction. Moves past either end are a no-op, not an error.
func (e *Editor) Move(index int, dir Direction) {
	if index < 0 || index >= len(e.blocks) {
		return
	}

	target := index + 1
	if dir == Up {
		target = index - 1
	}
	if target < 0 || target >= len(e.blocks) {
		return
	}

	e.blocks[index], e.blocks[target] = e.blocks[target], e.blocks[index]
}
