// SPDX-License-Identifier: EPL-2.0

package id3

import (
	"testing"

	"github.com/ik5/audvis/internal/audiotest"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"empty", nil, ""},
		{"encoding only", []byte{0x00}, ""},
		{"latin1", audiotest.LatinText("Test"), "Test"},
		{"latin1 high bytes", []byte{0x00, 'N', 0xE4, 'h'}, "Näh"},
		{"latin1 stops at NUL", []byte{0x00, 'A', 'B', 0x00, 'C'}, "AB"},
		{"utf16 LE with BOM", audiotest.UTF16Text("Artist"), "Artist"},
		{"utf16 BE with BOM", []byte{0x01, 0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}, "Hi"},
		{"utf16 no BOM", []byte{0x01, 'H', 0x00, 'i', 0x00}, "Hi"},
		{"utf16 odd trailing byte", []byte{0x01, 0xFF, 0xFE, 'O', 0x00, 'K', 0x00, 'x'}, "OK"},
		{"utf16 stops at NUL", []byte{0x01, 0xFF, 0xFE, 'A', 0x00, 0x00, 0x00, 'B', 0x00}, "A"},
		{"utf16 surrogate pair", audiotest.UTF16Text("\U0001F3B5"), "\U0001F3B5"},
		{"utf16BE", audiotest.UTF16BEText("Album"), "Album"},
		{"utf8", append([]byte{0x03}, "Zoë"...), "Zoë"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodeText(tt.payload); got != tt.want {
				t.Errorf("DecodeText(% x) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestExtractCover(t *testing.T) {
	t.Parallel()

	preamble := make([]byte, CoverPreambleSize)

	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{"jpeg right after preamble", append(preamble, 0xFF, 0xD8, 0x01), []byte{0xFF, 0xD8, 0x01}},
		{"png after description", append(append(preamble, 'd', 0), 0x89, 0x50, 0x4E), []byte{0x89, 0x50, 0x4E}},
		{"signature inside preamble ignored", append([]byte{0xFF, 0xD8}, make([]byte, CoverPreambleSize)...), nil},
		{"lone marker byte at end", append(preamble, 0x00, 0xFF), nil},
		{"too short", []byte{0x00, 0xFF, 0xD8}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractCover(tt.payload)
			if string(got) != string(tt.want) {
				t.Errorf("ExtractCover() = % x, want % x", got, tt.want)
			}
		})
	}
}
