// SPDX-License-Identifier: EPL-2.0

// Package id3 reads the legacy ID3v2 tag that prefixes an MP3 file.
//
// The reader walks the tag container frame by frame without a general
// purpose demuxer and extracts only what a player needs to show:
//   - TIT2 (title)
//   - TPE1 (artist)
//   - TALB (album)
//   - APIC (cover image bytes)
//
// Every other frame is skipped by its declared length.
//
// # Reading a Tag
//
//	file, _ := os.Open("song.mp3")
//	tag, err := id3.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(tag.Title, tag.Artist, tag.Album)
//
// When the stream does not start with the "ID3" marker, Read rewinds the
// stream to where it started and returns a Tag with Present set to false and
// every text field set to Unknown.
//
// # Sizes
//
// The outer tag size is a syncsafe integer (7 bits per byte). Frame sizes are
// read as plain 32-bit big-endian integers, which is what version 2.3 tags
// use. Version 2.4 tags encode frame sizes as syncsafe too; those are read the
// same way, so frames larger than 127 bytes in such tags are mis-sized.
//
// # Cover Images
//
// The APIC preamble (text encoding, MIME type, picture type, description) is
// not parsed field by field. The reader skips a fixed CoverPreambleSize bytes
// and then scans, inside the frame only, for a JPEG (FF D8) or PNG (89 50)
// signature. The cover is everything from the signature to the end of the
// frame. When no signature is found the cover is empty.
//
// # Limitations
//
//   - Malformed tags are not detected beyond short reads; a wrong frame
//     length desynchronises the frames that follow it.
//   - A frame with a declared length of zero ends the walk.
//   - Unsynchronisation, extended headers and compressed frames are ignored.
package id3
