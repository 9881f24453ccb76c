// SPDX-License-Identifier: EPL-2.0

// Package mp3 locates and decodes the MPEG audio payload of an MP3 file.
//
// # Locating the Payload
//
// Locate scans a file from a start offset (right after the ID3 tag) for the
// first frame sync pattern: a 0xFF byte followed by one of SyncSecondBytes.
// The scan is bounded by the file size and returns ErrNoStream when nothing
// is found.
//
//	loc, err := mp3.Locate(file, tag.Consumed(), size)
//	if err != nil {
//	    // Handle error
//	}
//
//	payload := make([]byte, loc.Length)
//	file.ReadAt(payload, loc.Offset)
//
// # Decoding
//
// Decoder opens a payload as an audio.Codec that decodes one frame per call:
//
//	codec, err := mp3.Decoder{}.Open(payload)
//	if err != nil {
//	    // Handle error
//	}
//	defer codec.Close()
//
//	h, _ := codec.DecodeHeader()
//	frame := audio.NewFrame(h.SamplesPerFrame)
//	for codec.DecodeFrame(frame) == nil {
//	    // frame.Left[:frame.Samples], frame.Right[:frame.Samples]
//	}
//
// Frame boundaries and headers come from github.com/tcolgate/mp3; PCM
// synthesis is done by github.com/hajimehoshi/go-mp3.
//
// # Output Format
//
//   - Sample format: audio.S16, stored in int32
//   - Channels: always left and right; mono streams are duplicated
//   - Sample rate: the rate of the stream's frame headers
//
// # Limitations
//
//   - Layer I and II streams are not decoded.
//   - A stream whose sample rate changes midway is decoded at the rate of
//     each frame but played at the rate of the first.
package mp3
