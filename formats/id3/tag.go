// SPDX-License-Identifier: EPL-2.0

package id3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderSize is the size of the tag header: magic, version, revision,
	// flags and the syncsafe tag size.
	HeaderSize = 10
	// FrameHeaderSize is the size of a frame header: id, size and flags.
	FrameHeaderSize = 10
	// CoverPreambleSize is the number of APIC bytes skipped before the image
	// signature scan starts.
	CoverPreambleSize = 11

	// Unknown is the value of text fields the tag does not carry.
	Unknown = "Unknown"
)

var magic = []byte("ID3")

// FrameHeader describes one frame of the tag container.
type FrameHeader struct {
	ID    string // 4-character frame id, e.g. "TIT2"
	Size  uint32 // declared payload size, excluding the header
	Flags uint16
}

// Tag is the metadata read from an ID3v2 tag.
type Tag struct {
	Present  bool // the stream started with a tag header
	Version  byte
	Revision byte
	Flags    byte
	Size     int64 // declared tag size, excluding the 10-byte header

	Title  string
	Artist string
	Album  string
	Cover  []byte

	// Frames lists the headers of every frame walked, in file order.
	Frames []FrameHeader
}

func newTag() *Tag {
	return &Tag{
		Title:  Unknown,
		Artist: Unknown,
		Album:  Unknown,
	}
}

// Consumed returns the number of bytes the tag occupies at the start of the
// file, header included. It is 0 when no tag is present.
func (t *Tag) Consumed() int64 {
	if !t.Present {
		return 0
	}
	return t.Size + HeaderSize
}

// Read parses the tag at the current position of r.
//
// If the stream does not start with a tag, r is rewound to its starting
// position and a Tag with default fields is returned. Otherwise r is left
// right after the last frame walked; callers that need the audio payload
// should seek to Consumed() themselves.
func Read(r io.ReadSeeker) (*Tag, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	tag := newTag()

	var hdr [HeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w", err)
	}

	if n < len(magic) || !bytes.Equal(hdr[:len(magic)], magic) {
		if _, err := r.Seek(start, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return tag, nil
	}

	if n < HeaderSize {
		return nil, ErrTruncatedHeader
	}

	tag.Present = true
	tag.Version = hdr[3]
	tag.Revision = hdr[4]
	tag.Flags = hdr[5]
	tag.Size = int64(DecodeSyncsafe(hdr[6:10]))

	if err := tag.walk(r); err != nil {
		return nil, err
	}

	return tag, nil
}

// walk reads frames until the frames read, headers included, add up to the
// tag size or a zero-length frame is found.
func (t *Tag) walk(r io.ReadSeeker) error {
	var buf [FrameHeaderSize]byte

	for consumed := int64(0); consumed < t.Size; {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return fmt.Errorf("%w: frame header: %w", ErrTruncatedFrame, err)
		}

		h := parseFrameHeader(buf)
		if h.Size == 0 {
			break
		}

		t.Frames = append(t.Frames, h)
		if err := t.readFrame(r, h); err != nil {
			return err
		}

		consumed += FrameHeaderSize + int64(h.Size)
	}

	return nil
}

func (t *Tag) readFrame(r io.ReadSeeker, h FrameHeader) error {
	var err error

	switch h.ID {
	case "TIT2":
		t.Title, err = readText(r, h.Size)
	case "TALB":
		t.Album, err = readText(r, h.Size)
	case "TPE1":
		t.Artist, err = readText(r, h.Size)
	case "APIC":
		t.Cover, err = readCover(r, h.Size)
	default:
		_, err = r.Seek(int64(h.Size), io.SeekCurrent)
		if err != nil {
			err = fmt.Errorf("%w: skip %s: %w", ErrTruncatedFrame, h.ID, err)
		}
	}

	return err
}

func parseFrameHeader(b [FrameHeaderSize]byte) FrameHeader {
	return FrameHeader{
		ID:    string(b[0:4]),
		Size:  binary.BigEndian.Uint32(b[4:8]),
		Flags: binary.BigEndian.Uint16(b[8:10]),
	}
}

// readPayload reads exactly size bytes. The buffer grows with the data
// actually read, so a corrupt size cannot force a large allocation up front.
func readPayload(r io.Reader, size uint32) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(buf) < int(size) {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedFrame, len(buf), size)
	}

	return buf, nil
}

// DecodeSyncsafe decodes a 4-byte syncsafe integer. The top bit of each byte
// is ignored.
func DecodeSyncsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}

	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
