// SPDX-License-Identifier: EPL-2.0

// Package wav records played audio to 16-bit PCM WAV files.
//
// It wraps the github.com/go-audio/wav encoder and decoder. The headless
// output device uses a Recorder as its sink, so a whole playback session can
// be captured without a sound card and checked afterwards.
//
// # Recording
//
//	file, _ := os.Create("session.wav")
//	rec := wav.NewRecorder(file, 44100, 2)
//	defer rec.Close()
//
//	block := make([]int16, 1152*2) // interleaved left/right
//	if err := rec.Write(block); err != nil {
//	    // Handle error
//	}
//
// Close writes the final chunk sizes and closes the file.
//
// # Reading Back
//
//	file, _ := os.Open("session.wav")
//	rec, err := wav.ReadWAV16(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(rec.SampleRate, rec.Channels, rec.Frames())
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a WAV file
//   - ErrOnlyPCM16bitSupported: the file is not 16-bit PCM
//   - ErrInvalidDstSize: a block is not a whole number of sample frames
//   - ErrRecorderClosed: Write after Close
package wav
