// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"unicode/utf16"
)

// Syncsafe encodes n as a 4-byte syncsafe integer.
func Syncsafe(n uint32) []byte {
	return []byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// TagBuilder assembles ID3v2.3 tags byte by byte.
type TagBuilder struct {
	version byte
	body    bytes.Buffer
	size    *uint32
}

// NewTag starts an empty version 2.3 tag.
func NewTag() *TagBuilder {
	return &TagBuilder{version: 3}
}

// Frame appends a frame with a plain big-endian size.
func (b *TagBuilder) Frame(id string, payload []byte) *TagBuilder {
	b.FrameHeader(id, uint32(len(payload)))
	b.body.Write(payload)
	return b
}

// FrameHeader appends a frame header only, with an arbitrary declared size.
func (b *TagBuilder) FrameHeader(id string, size uint32) *TagBuilder {
	var hdr [10]byte
	copy(hdr[0:4], id)
	binary.BigEndian.PutUint32(hdr[4:8], size)
	b.body.Write(hdr[:])
	return b
}

// Raw appends bytes as they are.
func (b *TagBuilder) Raw(p []byte) *TagBuilder {
	b.body.Write(p)
	return b
}

// Padding appends n zero bytes.
func (b *TagBuilder) Padding(n int) *TagBuilder {
	b.body.Write(make([]byte, n))
	return b
}

// Size overrides the declared tag size, which otherwise is the body length.
func (b *TagBuilder) Size(n uint32) *TagBuilder {
	b.size = &n
	return b
}

// BodyLen returns the number of bytes appended after the header so far.
func (b *TagBuilder) BodyLen() int { return b.body.Len() }

// Bytes returns the header followed by the body.
func (b *TagBuilder) Bytes() []byte {
	size := uint32(b.body.Len())
	if b.size != nil {
		size = *b.size
	}

	out := make([]byte, 0, 10+b.body.Len())
	out = append(out, 'I', 'D', '3', b.version, 0, 0)
	out = append(out, Syncsafe(size)...)
	out = append(out, b.body.Bytes()...)
	return out
}

// LatinText builds a text frame payload with the single-byte encoding.
func LatinText(s string) []byte {
	return append([]byte{0x00}, s...)
}

// UTF16Text builds a text frame payload with encoding 1: a little-endian
// byte order mark followed by little-endian code units.
func UTF16Text(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 3, 3+2*len(units))
	out[0], out[1], out[2] = 0x01, 0xFF, 0xFE
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

// UTF16BEText builds a text frame payload with encoding 2 (big-endian, no
// byte order mark).
func UTF16BEText(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := []byte{0x02}
	for _, u := range units {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

// APIC builds an attached picture payload: encoding, MIME type, picture
// type, description and image data.
func APIC(mime string, pictureType byte, desc string, img []byte) []byte {
	out := []byte{0x00}
	out = append(out, mime...)
	out = append(out, 0x00, pictureType)
	out = append(out, desc...)
	out = append(out, 0x00)
	return append(out, img...)
}

// PNGSignature is the 8-byte signature every PNG file starts with.
var PNGSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG returns a minimal valid w x h PNG image filled with c.
func PNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// MPEG-1 Layer III, 128 kbit/s, 44100 Hz, stereo, no CRC, no padding.
var mpegHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

// MPEGFrameSize is the size of the frame returned by MPEGFrame:
// 144 * 128000 / 44100.
const MPEGFrameSize = 417

// MPEGFrame returns one silent MPEG-1 Layer III frame.
func MPEGFrame() []byte {
	f := make([]byte, MPEGFrameSize)
	copy(f, mpegHeader)
	return f
}

// MPEGStream returns n consecutive silent frames.
func MPEGStream(n int) []byte {
	out := make([]byte, 0, n*MPEGFrameSize)
	for range n {
		out = append(out, MPEGFrame()...)
	}
	return out
}
