// SPDX-License-Identifier: EPL-2.0

package present

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // cover art decoders
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"
)

// ErrNoCover is returned by RenderCover for empty cover data.
var ErrNoCover = errors.New("no cover art")

// halfBlock paints the upper half of a cell with the foreground colour and
// the lower half with the background colour.
const halfBlock = "▀"

// RenderCover decodes a PNG or JPEG image and scales it to cols terminal
// columns. Every returned line holds two pixel rows drawn with true colour
// half blocks and ends with an attribute reset.
func RenderCover(data []byte, cols int) ([]string, error) {
	if len(data) == 0 {
		return nil, ErrNoCover
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%w: cover width %d", ErrInvalidLayout, cols)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}

	thumb := resize.Resize(uint(cols), 0, img, resize.Bilinear)
	b := thumb.Bounds()

	lines := make([]string, 0, (b.Dy()+1)/2)
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgb(thumb.At(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = rgb(thumb.At(x, y+1))
			}

			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, halfBlock)
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}

	return lines, nil
}

func rgb(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
