// Package render paints a model.MonthGrid onto an image.
//
// The image is divided into an 8x8 grid of cells. Column 0 holds week
// numbers and columns 1-7 hold Sunday through Saturday; row 0 is the title,
// row 1 the weekday titles and rows 2+ the weeks of the month. Positions are
// given as fractional cell points, so (4, 0.5) is the middle of the title row.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"calgrid/internal/model"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const gridCells = 8

// Options controls the image size and font sizes (in points).
type Options struct {
	Width     int
	Height    int
	DPI       float64
	TitleSize float64
	CellSize  float64
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, DPI: 96, TitleSize: 20, CellSize: 30}
}

// Palette holds the colors used by the painter.
type Palette struct {
	Background color.RGBA
	Selection  color.RGBA
	Title      color.RGBA
	WeekTitle  color.RGBA
	WeekNumber color.RGBA
	Day        color.RGBA
	Sunday     color.RGBA
}

var (
	whiteSmoke = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	powderBlue = color.RGBA{0xb0, 0xe0, 0xe6, 0xff}
	gray       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	lightCoral = color.RGBA{0xf0, 0x80, 0x80, 0xff}
	dodgerBlue = color.RGBA{0x1e, 0x90, 0xff, 0xff}
)

var DefaultPalette = Palette{
	Background: whiteSmoke,
	Selection:  powderBlue,
	Title:      gray,
	WeekTitle:  lightCoral,
	WeekNumber: dodgerBlue,
	Day:        gray,
	Sunday:     lightCoral,
}

// Painter draws month grids. A Painter owns font faces and must not be
// shared between goroutines.
type Painter struct {
	opts    Options
	palette Palette
	faces   faces
}

func NewPainter(opts Options, palette Palette) (*Painter, error) {
	if opts.Width < gridCells || opts.Height < gridCells {
		return nil, fmt.Errorf("render: image %dx%d is smaller than the %dx%d grid", opts.Width, opts.Height, gridCells, gridCells)
	}
	fs, err := loadFaces(opts)
	if err != nil {
		return nil, err
	}
	return &Painter{opts: opts, palette: palette, faces: fs}, nil
}

// Render paints g with the default palette.
func Render(g model.MonthGrid, opts Options) (*image.RGBA, error) {
	p, err := NewPainter(opts, DefaultPalette)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Paint(g), nil
}

func (p *Painter) Close() error {
	return p.faces.Close()
}

// Paint returns a new image of g.
func (p *Painter) Paint(g model.MonthGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.opts.Width, p.opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.palette.Background), image.Point{}, draw.Src)

	p.drawSelection(img, g)
	p.drawTitle(img, g)
	p.drawWeekTitles(img, g)
	p.drawWeekNumbers(img, g)
	p.drawDays(img, g)
	return img
}

// CellPoint is a fractional position on the 8x8 grid.
type CellPoint struct {
	X, Y float64
}

// DayPoint returns the center of the cell for a day in row (0-based week
// index) and weekday column.
func DayPoint(row, dayOfWeek int) CellPoint {
	return CellPoint{X: float64(dayOfWeek) + 1.5, Y: float64(row) + 2.5}
}

// Pixel maps a cell point onto image coordinates.
func (p *Painter) Pixel(c CellPoint) (float64, float64) {
	return float64(p.opts.Width) * c.X / gridCells, float64(p.opts.Height) * c.Y / gridCells
}

func (p *Painter) selectionRadius() float64 {
	return math.Min(float64(p.opts.Width), float64(p.opts.Height)) / 16
}

func (p *Painter) drawSelection(img *image.RGBA, g model.MonthGrid) {
	cx, cy := p.Pixel(DayPoint(g.CurrentWeekIndex, g.CurrentDayOfWeek))
	fillCircle(img, cx, cy, p.selectionRadius(), p.palette.Selection)
}

func (p *Painter) drawTitle(img *image.RGBA, g model.MonthGrid) {
	p.drawText(img, g.Title, p.faces.title, p.palette.Title, CellPoint{X: 4, Y: 0.5})
}

func (p *Painter) drawWeekTitles(img *image.RGBA, g model.MonthGrid) {
	p.drawText(img, "#", p.faces.cell, p.palette.WeekTitle, CellPoint{X: 0.5, Y: 1.5})
	for i, t := range g.WeekTitleRow {
		p.drawText(img, t, p.faces.cell, p.palette.WeekTitle, CellPoint{X: float64(i) + 1.5, Y: 1.5})
	}
}

func (p *Painter) drawWeekNumbers(img *image.RGBA, g model.MonthGrid) {
	if len(g.Weeks) == 0 {
		return
	}
	first, last := g.FirstWeek(), g.LastWeek()
	for w := first; w <= last; w++ {
		y := float64(w-first) + 2.5
		p.drawText(img, fmt.Sprint(w), p.faces.cell, p.palette.WeekNumber, CellPoint{X: 0.5, Y: y})
	}
}

func (p *Painter) drawDays(img *image.RGBA, g model.MonthGrid) {
	for r, wk := range g.Weeks {
		for _, c := range wk.Days {
			col := p.palette.Day
			if c.DayOfWeek == 0 {
				col = p.palette.Sunday
			}
			p.drawText(img, fmt.Sprint(c.DayOfMonth), p.faces.cell, col, DayPoint(r, c.DayOfWeek))
		}
	}
}

// drawText centers s on the cell point; vertical centering uses the face's
// cap height so digits and capitals sit on the row's midline.
func (p *Painter) drawText(img *image.RGBA, s string, face font.Face, c color.Color, at CellPoint) {
	cx, cy := p.Pixel(at)
	width := font.MeasureString(face, s)
	capHeight := face.Metrics().CapHeight
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(cx) - width/2,
			Y: floatToFixed(cy) + capHeight/2,
		},
	}
	d.DrawString(s)
}

func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	x, y, rr, k := float32(cx), float32(cy), float32(r), float32(r*kappa)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}
