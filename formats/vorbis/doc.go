// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis payloads for the player.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis has no fixed
// frame size, so the Codec cuts the stream into blocks of BlockFrames sample
// frames and hands each block to the pipeline as one frame. Samples are
// converted from float32 to audio.S16; mono streams are duplicated to both
// channels.
//
//	codec, err := vorbis.Decoder{}.Open(data)
//	if err != nil {
//	    // Handle error
//	}
//
//	h, _ := codec.DecodeHeader()
//	frame := audio.NewFrame(h.SamplesPerFrame)
//	for codec.DecodeFrame(frame) == nil {
//	    // frame.Left[:frame.Samples]
//	}
//
// The header carries the total length of the stream when the decoder can
// work it out, and no bit rate.
//
// # Limitations
//
//   - Streams with more than two channels are rejected.
//   - Chained streams are decoded at the rate of the first one.
package vorbis
