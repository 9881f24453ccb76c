// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"io"

	"github.com/ik5/audvis/audio"
	tmp3 "github.com/tcolgate/mp3"
)

// frameReader yields the header of the next frame in the stream.
type frameReader interface {
	next() (audio.Header, error)
}

// splitter walks frame boundaries with github.com/tcolgate/mp3. It only
// reads headers and frame bodies; synthesis is left to go-mp3.
type splitter struct {
	dec     *tmp3.Decoder
	frame   tmp3.Frame
	skipped int
}

func newSplitter(r io.Reader) *splitter {
	return &splitter{dec: tmp3.NewDecoder(r)}
}

func (s *splitter) next() (audio.Header, error) {
	if err := s.dec.Decode(&s.frame, &s.skipped); err != nil {
		return audio.Header{}, err
	}

	h := s.frame.Header()

	channels := 2
	if h.ChannelMode() == tmp3.SingleChannel {
		channels = 1
	}

	return audio.Header{
		BitRate:         int(h.BitRate()),
		SampleRate:      int(h.SampleRate()),
		Channels:        channels,
		SamplesPerFrame: s.frame.Samples(),
	}, nil
}
