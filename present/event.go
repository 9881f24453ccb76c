// SPDX-License-Identifier: EPL-2.0

package present

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Event is a user request.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventTogglePause
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventTogglePause:
		return "toggle-pause"
	default:
		return "none"
	}
}

// Input is polled once per frame and never blocks.
type Input interface {
	Poll() (Event, bool)
}

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// KeyInput reads key presses from r on its own goroutine.
type KeyInput struct {
	events chan Event
}

// NewKeyInput starts reading r. The reading goroutine ends when r returns an
// error.
func NewKeyInput(r io.Reader) *KeyInput {
	k := &KeyInput{events: make(chan Event, 16)}
	go k.read(r)

	return k
}

func (k *KeyInput) read(r io.Reader) {
	buf := make([]byte, 16)

	for {
		n, err := r.Read(buf)
		for _, ev := range decodeKeys(buf[:n]) {
			select {
			case k.events <- ev:
			default: // nobody is polling, drop
			}
		}

		if err != nil {
			return
		}
	}
}

func (k *KeyInput) Poll() (Event, bool) {
	select {
	case ev := <-k.events:
		return ev, true
	default:
		return EventNone, false
	}
}

// decodeKeys maps one read of raw terminal input to events. A lone Escape
// quits; an escape sequence (arrow keys and the like) is ignored.
func decodeKeys(b []byte) []Event {
	if len(b) == 0 {
		return nil
	}

	if b[0] == keyEscape {
		if len(b) == 1 {
			return []Event{EventQuit}
		}
		return nil
	}

	var events []Event
	for _, c := range b {
		switch c {
		case 'q', 'Q', keyCtrlC:
			events = append(events, EventQuit)
		case ' ':
			events = append(events, EventTogglePause)
		}
	}

	return events
}

// TermInput is a KeyInput on a terminal in raw mode.
type TermInput struct {
	*KeyInput

	fd    int
	state *term.State
}

// NewTermInput puts f in raw mode and reads keys from it. Close restores the
// terminal.
func NewTermInput(f *os.File) (*TermInput, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &TermInput{
		KeyInput: NewKeyInput(f),
		fd:       fd,
		state:    state,
	}, nil
}

// Close restores the terminal mode. The reading goroutine stays blocked on
// the terminal until the process exits.
func (t *TermInput) Close() error {
	if t.state == nil {
		return nil
	}

	err := term.Restore(t.fd, t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
