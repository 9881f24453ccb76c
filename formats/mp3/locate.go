// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// SyncFirstByte is the first byte of every frame sync pattern.
const SyncFirstByte = 0xFF

// SyncSecondBytes lists the second header bytes accepted after SyncFirstByte:
// MPEG-1, MPEG-2 and MPEG-2.5 Layer III, with and without CRC protection.
var SyncSecondBytes = [...]byte{0xFB, 0xF3, 0xF2, 0xFA, 0xE3, 0xE2, 0xEB, 0xEA}

// Location is the position of the compressed audio payload in a file.
type Location struct {
	Offset  int64 // first byte of the first frame sync
	Length  int64 // fileSize - Offset
	Skipped int64 // bytes scanned past between the scan start and Offset
}

// IsSync reports whether b0 b1 form a frame sync pattern.
func IsSync(b0, b1 byte) bool {
	if b0 != SyncFirstByte {
		return false
	}

	for _, s := range SyncSecondBytes {
		if b1 == s {
			return true
		}
	}

	return false
}

// Locate scans r, positioned at byte start of a file of fileSize bytes, for
// the first frame sync pattern. The scan never reads past fileSize and
// returns ErrNoStream when no pattern is found. A byte that fails as the
// second half of a pattern is re-examined as a first half, so runs such as
// FF FF FB are found.
//
// r is read through a buffer; its position after Locate is unspecified.
func Locate(r io.Reader, start, fileSize int64) (Location, error) {
	br := bufio.NewReader(r)

	var prev byte
	havePrev := false

	for pos := start; pos < fileSize; pos++ {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Location{}, fmt.Errorf("%w", err)
		}

		if havePrev && IsSync(prev, b) {
			offset := pos - 1
			return Location{
				Offset:  offset,
				Length:  fileSize - offset,
				Skipped: offset - start,
			}, nil
		}

		prev, havePrev = b, true
	}

	return Location{}, ErrNoStream
}
