package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Shapes are given in logical coordinates (the play field) and scaled to
// terminal pixels. Render only rewrites cells that changed since the last frame.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set
	shown          []rune // Glyph last written per cell, 0 if unknown

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused between frames
	numBuf    [20]byte
	pointBuf  []physics.Vec2
}

// NewCanvas creates a canvas of termWidth x termHeight cells that maps the
// logical area logicalWidth x logicalHeight onto it.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forgets what is on screen, so the next Render redraws every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.shown = make([]rune, termHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int      { return c.offsetCol }
func (c *Canvas) OffsetRow() int      { return c.offsetRow }
func (c *Canvas) TerminalWidth() int  { return c.termWidth }
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Lit reports whether the pixel at terminal column x and sub-pixel row y is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// ToPixel converts a logical point to pixel coordinates.
func (c *Canvas) ToPixel(p physics.Vec2) (x, y int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p physics.Vec2) {
	c.setPixel(c.ToPixel(p))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 physics.Vec2) {
	x1, y1 := c.ToPixel(p1)
	x2, y2 := c.ToPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolyline connects consecutive points with lines.
func (c *Canvas) DrawPolyline(points []physics.Vec2) {
	for i := 1; i < len(points); i++ {
		c.DrawLine(points[i-1], points[i])
	}
}

// DrawPolygon draws the closed outline through points.
func (c *Canvas) DrawPolygon(points []physics.Vec2) {
	if len(points) < 2 {
		return
	}
	c.DrawPolyline(points)
	c.DrawLine(points[len(points)-1], points[0])
}

// FillCircle fills a disc. The radius is in logical units; at least the
// center pixel is always set so tiny dots stay visible.
func (c *Canvas) FillCircle(center physics.Vec2, radius float64) {
	cx, cy := center.X*c.scaleX, center.Y*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY

	c.setPixel(int(math.Round(cx)), int(math.Round(cy)))
	if rx < 0.5 && ry < 0.5 {
		return
	}

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		ny := (float64(y) - cy) / ry
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			nx := (float64(x) - cx) / rx
			if nx*nx+ny*ny <= 1 {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a reusable slice of points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []physics.Vec2 {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]physics.Vec2, n)
	}
	return c.pointBuf[:n]
}

// Render writes every cell whose glyph changed since the previous Render.
// Runs of adjacent changed cells share one cursor move.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		cursorCol := -1 // Column the cursor sits at after the last write in this row

		for col := 0; col < c.termWidth; col++ {
			ch := cellGlyph(c.pixels[topOffset+col], c.pixels[bottomOffset+col])
			idx := row*c.termWidth + col
			if c.shown[idx] == ch {
				continue
			}
			c.shown[idx] = ch

			if cursorCol != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.renderBuf.WriteRune(ch)
			cursorCol = col + 1
		}
	}

	if c.renderBuf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box around the canvas when it is letterboxed.
// Sides are drawn only where there is room for them.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		tl, tr, bl, br := "", "", "", ""
		startCol := c.offsetCol + 1
		if hasH {
			tl, tr, bl, br = "┌", "┐", "└", "┘"
			startCol = left
		}
		buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(startCol) + "H" + tl + line + tr)
		buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(startCol) + "H" + bl + line + br)
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			r := strconv.Itoa(row)
			buf.WriteString("\033[" + r + ";" + strconv.Itoa(left) + "H│\033[" + r + ";" + strconv.Itoa(right) + "H│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
