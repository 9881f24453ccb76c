// SPDX-License-Identifier: EPL-2.0

package id3

import "io"

func readCover(r io.Reader, size uint32) ([]byte, error) {
	payload, err := readPayload(r, size)
	if err != nil {
		return nil, err
	}

	return ExtractCover(payload), nil
}

// ExtractCover returns the image bytes of an APIC frame payload: everything
// from the first JPEG or PNG signature after the fixed preamble to the end of
// the frame. It returns nil when the payload holds no signature.
func ExtractCover(payload []byte) []byte {
	if len(payload) <= CoverPreambleSize {
		return nil
	}

	at := imageStart(payload[CoverPreambleSize:])
	if at < 0 {
		return nil
	}

	return payload[CoverPreambleSize+at:]
}

// imageStart returns the index of the first FF D8 (JPEG SOI) or 89 50 (PNG
// signature start) pair in b, or -1.
func imageStart(b []byte) int {
	for i := 0; i+1 < len(b); i++ {
		switch {
		case b[i] == 0xFF && b[i+1] == 0xD8:
			return i
		case b[i] == 0x89 && b[i+1] == 0x50:
			return i
		}
	}

	return -1
}
