// SPDX-License-Identifier: EPL-2.0

package audvis

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audvis/formats/id3"
	"github.com/ik5/audvis/formats/mp3"
	"github.com/ik5/audvis/internal/audiotest"
)

func load(t *testing.T, data []byte) *Track {
	t.Helper()

	track, err := Load(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	return track
}

func checkConservation(t *testing.T, track *Track) {
	t.Helper()

	if got := int64(len(track.Audio)) + track.TagSize + track.Skipped; got != track.FileSize {
		t.Errorf("audio %d + tag %d + skipped %d = %d, want file size %d",
			len(track.Audio), track.TagSize, track.Skipped, got, track.FileSize)
	}
}

func TestLoad_TaggedFile(t *testing.T) {
	t.Parallel()

	png := audiotest.PNG(1, 1, color.White)
	tag := audiotest.NewTag().
		Frame("TIT2", audiotest.LatinText("Test")).
		Frame("TPE1", audiotest.UTF16Text("Artist")).
		Frame("APIC", audiotest.APIC("image/png", 3, "", png)).
		Bytes()
	audio := audiotest.MPEGStream(3)
	data := append(append([]byte{}, tag...), audio...)

	track := load(t, data)

	if track.Title != "Test" {
		t.Errorf("Title = %q, want %q", track.Title, "Test")
	}

	if track.Artist != "Artist" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Artist")
	}

	if track.Album != id3.Unknown {
		t.Errorf("Album = %q, want %q", track.Album, id3.Unknown)
	}

	if !bytes.HasPrefix(track.Cover, audiotest.PNGSignature) {
		t.Errorf("Cover starts with % x, want the PNG signature", track.Cover[:min(8, len(track.Cover))])
	}

	if track.AudioOffset != int64(len(tag)) {
		t.Errorf("AudioOffset = %d, want %d", track.AudioOffset, len(tag))
	}

	if !bytes.Equal(track.Audio, audio) {
		t.Errorf("Audio = %d bytes, want %d", len(track.Audio), len(audio))
	}

	if track.Format != FormatMP3 {
		t.Errorf("Format = %q, want %q", track.Format, FormatMP3)
	}

	checkConservation(t, track)
}

func TestLoad_GarbageBeforeSync(t *testing.T) {
	t.Parallel()

	tag := audiotest.NewTag().Frame("TIT2", audiotest.LatinText("x")).Bytes()
	garbage := []byte{0x00, 0xFF, 0x00, 0xFF, 0xFF, 0x12}

	data := append(append(append([]byte{}, tag...), garbage...), audiotest.MPEGStream(2)...)
	track := load(t, data)

	if track.Skipped != int64(len(garbage)) {
		t.Errorf("Skipped = %d, want %d", track.Skipped, len(garbage))
	}

	if track.AudioOffset != int64(len(tag)+len(garbage)) {
		t.Errorf("AudioOffset = %d, want %d", track.AudioOffset, len(tag)+len(garbage))
	}

	if track.Audio[0] != 0xFF || track.Audio[1] != 0xFB {
		t.Errorf("Audio starts with % x, want ff fb", track.Audio[:2])
	}

	checkConservation(t, track)
}

func TestLoad_NoTag(t *testing.T) {
	t.Parallel()

	// Leading junk is kept: without a tag there is no scan.
	data := append([]byte{0x01, 0x02}, audiotest.MPEGStream(2)...)
	track := load(t, data)

	if track.AudioOffset != 0 {
		t.Errorf("AudioOffset = %d, want 0", track.AudioOffset)
	}

	if int64(len(track.Audio)) != track.FileSize {
		t.Errorf("len(Audio) = %d, want %d", len(track.Audio), track.FileSize)
	}

	for name, got := range map[string]string{"Title": track.Title, "Artist": track.Artist, "Album": track.Album} {
		if got != id3.Unknown {
			t.Errorf("%s = %q, want %q", name, got, id3.Unknown)
		}
	}

	if track.Cover != nil {
		t.Errorf("Cover = %d bytes, want none", len(track.Cover))
	}

	checkConservation(t, track)
}

func TestLoad_ZeroLengthFrameSentinel(t *testing.T) {
	t.Parallel()

	tag := audiotest.NewTag().
		Frame("TIT2", audiotest.LatinText("Kept")).
		FrameHeader("TIT2", 0).
		Frame("TPE1", audiotest.LatinText("Ignored")).
		Bytes()
	data := append(append([]byte{}, tag...), audiotest.MPEGStream(1)...)

	track := load(t, data)

	if track.Title != "Kept" {
		t.Errorf("Title = %q, want %q", track.Title, "Kept")
	}

	if track.Artist != id3.Unknown {
		t.Errorf("Artist = %q, want %q", track.Artist, id3.Unknown)
	}

	// The payload still starts after the declared tag size.
	if track.AudioOffset != int64(len(tag)) {
		t.Errorf("AudioOffset = %d, want %d", track.AudioOffset, len(tag))
	}

	checkConservation(t, track)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty file", nil, ErrEmptyAudio},
		{"tag without audio", audiotest.NewTag().Frame("TIT2", audiotest.LatinText("x")).Bytes(), mp3.ErrNoStream},
		{"tag then junk", append(audiotest.NewTag().Padding(8).Bytes(), 1, 2, 3, 0xFF), mp3.ErrNoStream},
		{"truncated tag", audiotest.NewTag().FrameHeader("TIT2", 40).Raw([]byte{0, 'a'}).Bytes(), id3.ErrTruncatedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(bytes.NewReader(tt.data), int64(len(tt.data)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Ogg(t *testing.T) {
	t.Parallel()

	data := append([]byte("OggS"), make([]byte, 60)...)
	track := load(t, data)

	if track.Format != FormatOgg {
		t.Errorf("Format = %q, want %q", track.Format, FormatOgg)
	}

	if !bytes.Equal(track.Audio, data) {
		t.Errorf("Audio = %d bytes, want the whole file", len(track.Audio))
	}

	checkConservation(t, track)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	data := append(audiotest.NewTag().Frame("TALB", audiotest.LatinText("Disk")).Bytes(), audiotest.MPEGStream(2)...)
	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	if track.Album != "Disk" {
		t.Errorf("Album = %q, want %q", track.Album, "Disk")
	}

	if track.FileSize != int64(len(data)) {
		t.Errorf("FileSize = %d, want %d", track.FileSize, len(data))
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestTrack_OpenCodec(t *testing.T) {
	t.Parallel()

	track := load(t, audiotest.MPEGStream(4))

	codec, err := track.OpenCodec(NewRegistry())
	if err != nil {
		t.Fatalf("OpenCodec() error = %v, want nil", err)
	}
	defer codec.Close()

	h, err := codec.DecodeHeader()
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v, want nil", err)
	}

	if h.SampleRate != 44100 || h.SamplesPerFrame != 1152 {
		t.Errorf("DecodeHeader() = %+v, want 44100 Hz, 1152 samples", h)
	}
}
