package core

// TileWidth is the on-screen width of one tile, drawn as " X ".
const TileWidth = 3

// BoardRect returns the screen area a board of the given size occupies
// when drawn inside a box at (x, y).
func BoardRect(x, y, size int) Rect {
	return NewRect(x, y, size*TileWidth+2, size+2)
}

// Cursor is a highlighted tile drawn with brackets in its color.
type Cursor struct {
	At    Coord
	Color Color
}

// DrawBoard draws the snapshot's grid boxed at (x, y) and brackets each
// cursor. Later cursors overwrite earlier ones on the same tile.
func DrawBoard(scr *Screen, x, y int, snap Snapshot, showAdjacency bool, cursors ...Cursor) {
	scr.DrawBox(BoardRect(x, y, snap.Size), ColorWhite)
	for r := 0; r < snap.Size; r++ {
		for c := 0; c < snap.Size; c++ {
			ch, col := CellGlyph(snap.Cell(r, c), showAdjacency)
			scr.SetColored(x+2+c*TileWidth, y+1+r, ch, col)
		}
	}
	for _, cur := range cursors {
		cx := x + 1 + cur.At.Col*TileWidth
		cy := y + 1 + cur.At.Row
		scr.SetColored(cx, cy, '[', cur.Color)
		scr.SetColored(cx+2, cy, ']', cur.Color)
	}
}

// MoveCursor applies directional actions to a cursor on a size×size board.
func MoveCursor(cur Coord, in InputFrame, size int) Coord {
	if in.Has(ActionUp) {
		cur.Row--
	}
	if in.Has(ActionDown) {
		cur.Row++
	}
	if in.Has(ActionLeft) {
		cur.Col--
	}
	if in.Has(ActionRight) {
		cur.Col++
	}
	cur.Row = Clamp(cur.Row, 0, size-1)
	cur.Col = Clamp(cur.Col, 0, size-1)
	return cur
}
