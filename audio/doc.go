// SPDX-License-Identifier: EPL-2.0

// Package audio provides the typed sample buffers and conversions used by the
// playback pipeline.
//
// This package contains the core building blocks:
//   - Codec interface for frame-at-a-time decoders
//   - Frame, a reusable per-channel PCM buffer
//   - SampleFormat and Rescale for fixed-point range conversion
//   - Mix and Interleave for building the output block
//   - FoldMono for the spectrum input
//   - Codec registry
//
// # Codec Interface
//
// A Codec decodes exactly one compressed frame per call:
//
//	type Codec interface {
//	    DecodeHeader() (Header, error)
//	    DecodeFrame(dst *Frame) error
//	    Format() SampleFormat
//	    Close() error
//	}
//
// DecodeFrame returns io.EOF when the stream is exhausted. Any other error
// means the frame could not be decoded; callers stop at the first error of
// either kind.
//
// # Sample Format
//
// Decoded samples are signed fixed-point integers stored in int32. The
// SampleFormat gives their range: S16 for 16-bit codecs, S24 for codecs that
// produce 24-bit samples. Rescale maps any format onto the signed 16-bit
// output range with the ratio Int16Max / Max():
//
//	out := audio.Rescale(frame.Left[i], frame.Format)
//
// # Stream Configuration
//
// Buffer sizes are never hard-coded. They come from a StreamConfig resolved
// once from the first frame header:
//
//	h, _ := codec.DecodeHeader()
//	cfg := audio.ConfigFor(h, codec.Format())
//	block := make([]int16, cfg.BlockSamples())
//
// # Codec Registry
//
// The registry allows codec registration by format name:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	codec, err := registry.Open("mp3", payload)
//
// # Performance Considerations
//
// Mix, Interleave and FoldMono run on the audio callback. They never allocate
// and never block; all buffers are sized by the caller up front.
package audio
