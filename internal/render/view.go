package render

import "math"

// Window sizing limits, in screen pixels.
const (
	CellPixels = 10
	Border     = 10
	MinWidth   = 300
	MaxWidth   = 1200
	MinHeight  = 300
	MaxHeight  = 800

	zoomRate = 0.05
	minZoom  = 0.1
)

// WindowSize picks the initial window size and pixels per cell for a board.
// Boards are drawn at CellPixels per cell plus Border on every side unless
// that falls outside the Min/Max limits, in which case the cell size is
// rescaled so the limiting axis fits exactly and the other axis follows the
// board's aspect ratio.
func WindowSize(rows, cols int) (w, h int, cell float64) {
	ew := cols*CellPixels + 2*Border
	eh := rows*CellPixels + 2*Border

	limW, limH := MaxWidth, MaxHeight
	switch {
	case ew < MaxWidth && eh < MaxHeight && ew > MinWidth && eh > MinHeight:
		return ew, eh, CellPixels
	case ew < MaxWidth && eh < MaxHeight:
		limW, limH = MinWidth, MinHeight
	}

	if float64(cols)/float64(rows) < float64(limW)/float64(limH) {
		cell = float64(limH-2*Border) / float64(rows)
		return int(float64(cols)*cell) + 2*Border, limH, cell
	}
	cell = float64(limW-2*Border) / float64(cols)
	return limW, int(float64(rows)*cell) + 2*Border, cell
}

// View maps cell coordinates (x = column, y = row) onto the screen.
type View struct {
	Zoom   float64 // screen pixels per cell
	CX, CY float64 // cell-space point shown at the centre of the screen
	W, H   int     // screen size in pixels
}

// NewView returns a view of size w×h centred on a rows×cols board.
func NewView(rows, cols, w, h int, zoom float64) View {
	return View{Zoom: zoom, CX: 0.5 * float64(cols), CY: 0.5 * float64(rows), W: w, H: h}
}

// Resize records a new screen size, keeping zoom and centre.
func (v *View) Resize(w, h int) { v.W, v.H = w, h }

// Fit recentres the board and chooses the zoom that fits its limiting axis
// inside the screen minus Border on each side.
func (v *View) Fit(rows, cols int) {
	if v.W <= 0 || v.H <= 0 {
		return
	}
	if float64(cols)/float64(rows) < float64(v.W)/float64(v.H) {
		v.Zoom = float64(v.H-2*Border) / float64(rows)
	} else {
		v.Zoom = float64(v.W-2*Border) / float64(cols)
	}
	v.Zoom = math.Max(v.Zoom, minZoom)
	v.CX, v.CY = 0.5*float64(cols), 0.5*float64(rows)
}

// ZoomBy scales the zoom for a mouse wheel offset. Scrolling up (positive
// delta) shrinks cells.
func (v *View) ZoomBy(delta float64) {
	v.Zoom = math.Max(v.Zoom*math.Exp(-delta*zoomRate), minZoom)
}

// Pan drags the board by a screen-space delta.
func (v *View) Pan(dx, dy float64) {
	v.CX -= dx / v.Zoom
	v.CY -= dy / v.Zoom
}

// Origin returns the screen position of the top-left corner of cell (0,0).
func (v View) Origin() (x, y float64) {
	return 0.5*float64(v.W) - v.CX*v.Zoom, 0.5*float64(v.H) - v.CY*v.Zoom
}

// ToCell converts a screen position into fractional cell coordinates.
func (v View) ToCell(sx, sy float64) (x, y float64) {
	ox, oy := v.Origin()
	return (sx - ox) / v.Zoom, (sy - oy) / v.Zoom
}

// CellAt returns the row and column under a screen pixel and whether it lies
// on a rows×cols board.
func (v View) CellAt(sx, sy int, rows, cols int) (i, j int, ok bool) {
	x, y := v.ToCell(float64(sx), float64(sy))
	if x < 0 || y < 0 || x >= float64(cols) || y >= float64(rows) {
		return 0, 0, false
	}
	return int(y), int(x), true
}
