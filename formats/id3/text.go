// SPDX-License-Identifier: EPL-2.0

package id3

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf16"
)

// Text encodings of a text frame, given by its first byte.
const (
	EncodingISO8859 byte = 0
	EncodingUTF16   byte = 1 // with BOM, little-endian when the BOM is missing
	EncodingUTF16BE byte = 2
	EncodingUTF8    byte = 3
)

func readText(r io.Reader, size uint32) (string, error) {
	payload, err := readPayload(r, size)
	if err != nil {
		return "", err
	}

	return DecodeText(payload), nil
}

// DecodeText decodes a text frame payload: one encoding byte followed by the
// text. Decoding stops at the first NUL character.
func DecodeText(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}

	enc, data := payload[0], payload[1:]

	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		// (length-1)/2 code units; an odd trailing byte is dropped.
		units := len(data) / 2
		return decodeUTF16(data[:units*2], enc == EncodingUTF16BE)
	case EncodingISO8859:
		return decodeLatin1(cstring(data))
	default:
		return string(cstring(data))
	}
}

func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func decodeUTF16(b []byte, bigEndian bool) string {
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			bigEndian = false
			b = b[2:]
		case b[0] == 0xFE && b[1] == 0xFF:
			bigEndian = true
			b = b[2:]
		}
	}

	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}

	u16 := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u := order.Uint16(b[i:])
		if u == 0 {
			break
		}
		u16 = append(u16, u)
	}

	return string(utf16.Decode(u16))
}
