package life

// NextState applies Conway's rule to a cell with n live neighbors.
func NextState(alive uint8, n int) uint8 {
	if n == 3 || (alive == Alive && n == 2) {
		return Alive
	}
	return Dead
}

// Advance computes the next generation in place.
//
// The board is split into its four corners, the non-corner cells of the four
// edges and the interior. Corners wrap on both axes and go through Periodic,
// edge cells wrap on one axis only and the interior uses plain slice
// arithmetic. The result is identical to AdvanceUniform for every grid,
// including single row and single column boards.
func Advance(g *Grid) {
	rows, cols := g.rows, g.cols

	g.stepPeriodic(0, 0)
	g.stepPeriodic(0, cols-1)
	g.stepPeriodic(rows-1, 0)
	g.stepPeriodic(rows-1, cols-1)

	g.stepRowEdge(0)
	if rows > 1 {
		g.stepRowEdge(rows - 1)
	}
	g.stepColEdge(0)
	if cols > 1 {
		g.stepColEdge(cols - 1)
	}

	cur, nxt := g.cells, g.scratch
	for i := 1; i < rows-1; i++ {
		up := cur[(i-1)*cols : i*cols]
		mid := cur[i*cols : (i+1)*cols]
		dn := cur[(i+1)*cols : (i+2)*cols]
		out := nxt[i*cols : (i+1)*cols]
		for j := 1; j < cols-1; j++ {
			n := int(up[j-1]) + int(up[j]) + int(up[j+1]) +
				int(mid[j-1]) + int(mid[j+1]) +
				int(dn[j-1]) + int(dn[j]) + int(dn[j+1])
			out[j] = NextState(mid[j], n)
		}
	}

	g.cells, g.scratch = nxt, cur
}

// AdvanceUniform computes the next generation reading every neighbor through
// Periodic. It is the reference Advance is checked against.
func AdvanceUniform(g *Grid) {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			g.stepPeriodic(i, j)
		}
	}
	g.cells, g.scratch = g.scratch, g.cells
}

// stepPeriodic writes the next state of (i, j) into scratch.
func (g *Grid) stepPeriodic(i, j int) {
	n := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			n += int(g.Periodic(i+di, j+dj))
		}
	}
	idx := i*g.cols + j
	g.scratch[idx] = NextState(g.cells[idx], n)
}

// stepRowEdge handles columns 1..cols-2 of row i, wrapping vertically.
func (g *Grid) stepRowEdge(i int) {
	rows, cols := g.rows, g.cols
	cur := g.cells
	up := cur[wrap(i-1, rows)*cols:][:cols]
	mid := cur[i*cols:][:cols]
	dn := cur[wrap(i+1, rows)*cols:][:cols]
	out := g.scratch[i*cols:][:cols]
	for j := 1; j < cols-1; j++ {
		n := int(up[j-1]) + int(up[j]) + int(up[j+1]) +
			int(mid[j-1]) + int(mid[j+1]) +
			int(dn[j-1]) + int(dn[j]) + int(dn[j+1])
		out[j] = NextState(mid[j], n)
	}
}

// stepColEdge handles rows 1..rows-2 of column j, wrapping horizontally.
func (g *Grid) stepColEdge(j int) {
	cols := g.cols
	cur := g.cells
	l, r := wrap(j-1, cols), wrap(j+1, cols)
	for i := 1; i < g.rows-1; i++ {
		up, mid, dn := (i-1)*cols, i*cols, (i+1)*cols
		n := int(cur[up+l]) + int(cur[up+j]) + int(cur[up+r]) +
			int(cur[mid+l]) + int(cur[mid+r]) +
			int(cur[dn+l]) + int(cur[dn+j]) + int(cur[dn+r])
		g.scratch[mid+j] = NextState(cur[mid+j], n)
	}
}
