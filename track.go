// SPDX-License-Identifier: EPL-2.0

package audvis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audvis/audio"
	"github.com/ik5/audvis/formats/id3"
	"github.com/ik5/audvis/formats/mp3"
	"github.com/ik5/audvis/formats/vorbis"
)

// Payload formats a Track can carry; they are the keys of NewRegistry.
const (
	FormatMP3 = "mp3"
	FormatOgg = "ogg"
)

// Track is one file loaded into memory: its metadata and its compressed
// audio payload. A Track is not modified after Load returns.
type Track struct {
	Title  string
	Artist string
	Album  string
	Cover  []byte // raw JPEG or PNG bytes, nil when the file has none

	Format string // FormatMP3 or FormatOgg
	Audio  []byte // compressed payload, from the first frame sync to EOF

	FileSize    int64
	AudioOffset int64
	TagSize     int64 // bytes taken by the ID3 tag, header included
	Skipped     int64 // bytes between the tag and the first frame sync
}

// Open loads the track stored at path.
func Open(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return Load(f, info.Size())
}

// Load reads a track of size bytes from r, which must be positioned at the
// start of the file.
//
// An MP3 file may start with an ID3 tag. Without one, the payload is the
// whole file. With one, the payload starts at the first frame sync after the
// tag, and Locate's ErrNoStream is returned when there is none. Files that
// start with an Ogg page are loaded whole as FormatOgg, with default
// metadata.
func Load(r io.ReadSeeker, size int64) (*Track, error) {
	t := &Track{
		Title:    id3.Unknown,
		Artist:   id3.Unknown,
		Album:    id3.Unknown,
		Format:   FormatMP3,
		FileSize: size,
	}

	ogg, err := hasPrefix(r, vorbis.Magic)
	if err != nil {
		return nil, err
	}

	if ogg {
		t.Format = FormatOgg
		return t.load(r, 0, size)
	}

	tag, err := id3.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading tag: %w", err)
	}

	t.Title, t.Artist, t.Album, t.Cover = tag.Title, tag.Artist, tag.Album, tag.Cover
	t.TagSize = tag.Consumed()

	if !tag.Present {
		return t.load(r, 0, size)
	}

	if _, err := r.Seek(t.TagSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	loc, err := mp3.Locate(r, t.TagSize, size)
	if err != nil {
		return nil, fmt.Errorf("locating audio: %w", err)
	}

	t.Skipped = loc.Skipped

	return t.load(r, loc.Offset, loc.Length)
}

// load reads the payload of length bytes at offset.
func (t *Track) load(r io.ReadSeeker, offset, length int64) (*Track, error) {
	if length <= 0 {
		return nil, ErrEmptyAudio
	}

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	t.Audio = make([]byte, length)
	if _, err := io.ReadFull(r, t.Audio); err != nil {
		return nil, fmt.Errorf("reading audio: %w", err)
	}

	t.AudioOffset = offset

	return t, nil
}

// hasPrefix reports whether the stream starts with magic and rewinds it.
func hasPrefix(r io.ReadSeeker, magic []byte) (bool, error) {
	buf := make([]byte, len(magic))

	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("%w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("%w", err)
	}

	return n == len(magic) && bytes.Equal(buf, magic), nil
}

// NewRegistry returns a codec registry for every Track format.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(FormatMP3, mp3.Decoder{})
	reg.Register(FormatOgg, vorbis.Decoder{})

	return reg
}

// OpenCodec opens the track payload with the codec registered for its
// format.
func (t *Track) OpenCodec(reg *audio.Registry) (audio.Codec, error) {
	return reg.Open(t.Format, t.Audio)
}
