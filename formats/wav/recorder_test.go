// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func createFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	return f
}

func readBack(t *testing.T, path string) *Recording {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer f.Close()

	rec, err := ReadWAV16(f)
	if err != nil {
		t.Fatalf("ReadWAV16() error = %v, want nil", err)
	}

	return rec
}

func TestRecorder_RoundTrip(t *testing.T) {
	t.Parallel()

	f := createFile(t)
	rec := NewRecorder(f, 44100, 2)

	blocks := [][]int16{
		{0, 1, -1, 32767},
		{-32768, 100, 200, -200, 5, 6},
	}

	for _, b := range blocks {
		if err := rec.Write(b); err != nil {
			t.Fatalf("Write() error = %v, want nil", err)
		}
	}

	if rec.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", rec.Frames())
	}

	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	got := readBack(t, f.Name())

	if got.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", got.SampleRate)
	}

	if got.Channels != 2 {
		t.Errorf("Channels = %d, want 2", got.Channels)
	}

	want := append(append([]int16{}, blocks[0]...), blocks[1]...)
	if len(got.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(got.Samples), len(want))
	}

	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, got.Samples[i], want[i])
		}
	}

	if got.Frames() != 5 {
		t.Errorf("Recording.Frames() = %d, want 5", got.Frames())
	}
}

func TestRecorder_InvalidBlock(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(createFile(t), 8000, 2)
	defer rec.Close()

	if err := rec.Write([]int16{1, 2, 3}); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("Write(odd) error = %v, want %v", err, ErrInvalidDstSize)
	}

	if err := rec.Write(nil); err != nil {
		t.Errorf("Write(nil) error = %v, want nil", err)
	}
}

func TestRecorder_WriteAfterClose(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(createFile(t), 8000, 1)

	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	if err := rec.Write([]int16{1}); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("Write() after Close error = %v, want %v", err, ErrRecorderClosed)
	}

	if err := rec.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}

func TestReadWAV16_NotWav(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("This is not a WAV file at all, just text"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := ReadWAV16(f); !errors.Is(err, ErrNotWavFile) {
		t.Errorf("ReadWAV16() error = %v, want %v", err, ErrNotWavFile)
	}
}
