// SPDX-License-Identifier: EPL-2.0

// Package audvis loads audio files for the audvis player and visualiser.
//
// A Track is the whole input file turned into what playback needs: the
// title, artist, album and cover from the ID3 tag, and the compressed audio
// payload that starts at the first MPEG frame sync.
//
// # Loading a Track
//
//	track, err := audvis.Open("song.mp3")
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(track.Artist, "-", track.Title)
//
// The byte accounting of a loaded track always adds up:
//
//	len(track.Audio) + track.TagSize + track.Skipped == track.FileSize
//
// # Decoding
//
// NewRegistry knows a codec for every payload format a Track can carry:
//
//	codec, err := track.OpenCodec(audvis.NewRegistry())
//
// The codec is then driven one frame at a time by the playback package,
// from inside the audio device callback.
//
// # Packages
//
//   - formats/id3: tag reader
//   - formats/mp3: frame sync locator and MP3 codec
//   - formats/vorbis: Ogg Vorbis codec
//   - formats/wav, formats/aiff: recorders used by the headless device
//   - audio: frames, sample formats, rescaling and mixing
//   - spectrum: FFT and bin scaling
//   - playback: the decode pipeline, clock and spectrum snapshot
//   - device: audio output backends
//   - present: the terminal presentation loop
package audvis
