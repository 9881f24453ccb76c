// SPDX-License-Identifier: EPL-2.0

package present

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/audvis/spectrum"
)

// ErrInvalidLayout is returned for a terminal too small to draw on.
var ErrInvalidLayout = errors.New("invalid layout")

const (
	// DefaultPlotPoints is how many low frequency bins are plotted.
	DefaultPlotPoints = 288
	// DefaultCoverCols is the width of the cover thumbnail.
	DefaultCoverCols = 24

	headerRows = 4
	barGlyph   = "█"
)

// Frame is what one draw needs.
type Frame struct {
	Now      uint32 // ms
	Duration uint32 // ms
	Paused   bool
	Bins     []float64
}

// Surface draws frames.
type Surface interface {
	Draw(f Frame) error
}

// Meta is the static track information shown on screen.
type Meta struct {
	Title  string
	Artist string
	Album  string
	Cover  []byte
}

// FormatClock renders a position and a duration, both in milliseconds.
func FormatClock(now, duration uint32) string {
	n := now / 1000
	d := duration / 1000

	return fmt.Sprintf("Time:%02d:%02d/%02d:%02d", n/60, n%60, d/60, d%60)
}

// Layout sizes a TermSurface.
type Layout struct {
	Width      int // terminal columns
	Height     int // terminal rows
	PlotPoints int // leading spectrum bins to plot
	CoverCols  int // 0 hides the cover
}

// TermSurface draws on an ANSI terminal.
type TermSurface struct {
	w      io.Writer
	layout Layout

	static  []byte // header and cover, written once
	textCol int
	plotTop int
	plotH   int

	points  []float64
	columns []float64
	buf     bytes.Buffer
	drawn   bool
}

// NewTermSurface prepares the static part of the screen. A cover that cannot
// be decoded is logged and left out.
func NewTermSurface(w io.Writer, meta Meta, layout Layout, logger *slog.Logger) (*TermSurface, error) {
	if layout.PlotPoints <= 0 {
		layout.PlotPoints = DefaultPlotPoints
	}
	if layout.Width <= 0 || layout.Height <= headerRows {
		return nil, fmt.Errorf("%w: %dx%d terminal", ErrInvalidLayout, layout.Width, layout.Height)
	}
	if logger == nil {
		logger = slog.Default()
	}

	var cover []string
	if layout.CoverCols > 0 && len(meta.Cover) > 0 && layout.CoverCols < layout.Width {
		var err error
		cover, err = RenderCover(meta.Cover, layout.CoverCols)
		if err != nil {
			logger.Warn("cover not shown", slog.Any("error", err))
			cover = nil
		}
	}

	s := &TermSurface{
		w:       w,
		layout:  layout,
		textCol: 1,
		points:  make([]float64, layout.PlotPoints),
		columns: make([]float64, layout.Width),
	}
	if len(cover) > 0 {
		s.textCol = layout.CoverCols + 2
	}

	top := max(headerRows, len(cover)) + 2
	if top > layout.Height {
		// no room for the cover and a plot
		cover = nil
		s.textCol = 1
		top = headerRows + 2
	}
	s.plotTop = top
	s.plotH = max(0, layout.Height-top+1)

	var b bytes.Buffer
	b.WriteString("\x1b[?25l\x1b[2J\x1b[H")
	for i, line := range cover {
		fmt.Fprintf(&b, "\x1b[%d;1H%s", i+1, line)
	}
	fmt.Fprintf(&b, "\x1b[1;%dHArtist:%s", s.textCol, meta.Artist)
	fmt.Fprintf(&b, "\x1b[2;%dHTitle:%s", s.textCol, meta.Title)
	fmt.Fprintf(&b, "\x1b[3;%dHAlbum:%s", s.textCol, meta.Album)
	s.static = b.Bytes()

	return s, nil
}

// PlotRows is the height of the spectrum plot.
func (s *TermSurface) PlotRows() int { return s.plotH }

// Draw writes the clock line and the spectrum plot. The first call also
// writes the static part of the screen.
func (s *TermSurface) Draw(f Frame) error {
	s.buf.Reset()
	if !s.drawn {
		s.buf.Write(s.static)
		s.drawn = true
	}

	fmt.Fprintf(&s.buf, "\x1b[%d;%dH\x1b[K%s", headerRows, s.textCol, FormatClock(f.Now, f.Duration))
	if f.Paused {
		s.buf.WriteString(" [paused]")
	}

	s.plot(f.Bins)

	_, err := s.w.Write(s.buf.Bytes())
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	return nil
}

func (s *TermSurface) plot(bins []float64) {
	if s.plotH == 0 {
		return
	}

	clear(s.points)
	copy(s.points, bins)
	if len(s.columns) <= len(s.points) {
		spectrum.Resample(s.columns, s.points)
	} else {
		for i := range s.columns {
			s.columns[i] = s.points[i*len(s.points)/len(s.columns)]
		}
	}

	for row := range s.plotH {
		// row 0 is the top of the plot
		level := float64(s.plotH - row)
		fmt.Fprintf(&s.buf, "\x1b[%d;1H", s.plotTop+row)
		for _, v := range s.columns {
			if math.Abs(v)*float64(s.plotH) >= level-0.5 {
				s.buf.WriteString(barGlyph)
			} else {
				s.buf.WriteByte(' ')
			}
		}
	}
}

// Close shows the cursor again and moves it below the plot.
func (s *TermSurface) Close() error {
	_, err := fmt.Fprintf(s.w, "\x1b[0m\x1b[?25h\x1b[%d;1H\n", s.layout.Height)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
