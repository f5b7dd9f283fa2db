package scenario

// GridSize is the side length of the range matrix.
const GridSize = 13

// ComboAt returns the canonical combo for a grid cell. The diagonal
// holds pairs, the upper-right triangle suited hands, the lower-left
// offsuit hands.
func ComboAt(row, col int) string {
	switch {
	case row == col:
		return string([]byte{ranks[row], ranks[col]})
	case row < col:
		return string([]byte{ranks[row], ranks[col], 's'})
	default:
		return string([]byte{ranks[col], ranks[row], 'o'})
	}
}

// Grid maps every cell of the 13x13 matrix to the name of the range
// that claims its combo. After fold completion every cell is claimed.
func (s *PreflopScenario) Grid() [GridSize][GridSize]string {
	var grid [GridSize][GridSize]string
	names := s.actionNames()
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			combo := ComboAt(row, col)
			for _, name := range names {
				if s.Ranges[name].Contains(combo) {
					grid[row][col] = name
					break
				}
			}
		}
	}
	return grid
}
