package board

// Neighbors returns the up-to-8 coordinates around (row, col), clipped at
// the edges of a size x size grid.
func Neighbors(size, row, col int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < size && c >= 0 && c < size {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Annotate sets Adjacency on every Empty cell to the number of non-empty
// neighbours. Target cells are left at 0.
func Annotate(g *Grid) {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cell := &g.cells[r][c]
			if cell.Kind != Empty {
				cell.Adjacency = 0
				continue
			}
			count := 0
			for _, n := range Neighbors(g.size, r, c) {
				if g.cells[n.Row][n.Col].Kind != Empty {
					count++
				}
			}
			cell.Adjacency = count
		}
	}
}
