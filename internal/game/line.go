package game

// Line is one of the eight winning triples of cells.
type Line [3]Position

var lines = [8]Line{
	// Rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// Columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// Diagonals. The anti-diagonal runs from the bottom-left corner.
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Lines returns every winning line in scan order: rows, then columns, then
// diagonals, lowest index first within each group.
func Lines() [8]Line {
	return lines
}

// Contains reports whether p is one of the line's cells.
func (l Line) Contains(p Position) bool {
	for _, cell := range l {
		if cell == p {
			return true
		}
	}
	return false
}
