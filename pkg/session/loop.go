//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package session

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"go.uber.org/zap"

	"github.com/timburks/iosplit/types"
)

// A chunk is one read from the shell.
type chunk struct {
	data []byte
	err  error
}

// Run processes keyboard events and shell output until the shell's
// output ends. It returns nil when the shell exits and an error for any
// failure reading the shell, the keyboard, or writing the display.
func (s *Session) Run(screen types.Screen) error {
	done := make(chan struct{})
	defer close(done)
	events := make(chan *types.Event)
	output := make(chan chunk)
	go pumpEvents(screen, events, done)
	go pumpOutput(s.child, s.config.ReadChunk, output, done)
	return s.loop(screen, events, output)
}

func (s *Session) loop(d types.Display, events <-chan *types.Event, output <-chan chunk) error {
	s.resize(d.GetSize())
	if err := s.window.Render(d); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for {
		select {
		case event := <-events:
			if err := s.processEvent(event); err != nil {
				return err
			}
		case c := <-output:
			if c.err != nil {
				if isEndOfStream(c.err) {
					s.log.Info("shell output ended")
					return nil
				}
				return fmt.Errorf("read from shell: %w", c.err)
			}
			if err := s.commander.ProcessOutput(c.data); err != nil {
				return err
			}
		}
		if err := s.window.Render(d); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
}

func (s *Session) processEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return s.commander.ProcessKey(event)
	case types.EventResize:
		s.resize(types.Size{Rows: event.Height, Cols: event.Width})
	case types.EventError:
		s.log.Error("keyboard error", zap.Error(event.Err))
		return fmt.Errorf("read keyboard: %w", event.Err)
	}
	return nil
}

// isEndOfStream reports whether a read error means the shell has gone.
// Linux reports EIO on the pty once the other side is closed.
func isEndOfStream(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO)
}

func pumpEvents(screen types.Screen, events chan<- *types.Event, done <-chan struct{}) {
	for {
		event := screen.GetNextEvent()
		select {
		case events <- event:
		case <-done:
			return
		}
	}
}

// pumpOutput reads from the shell until an error, sending each chunk
// as a copy. The error, including io.EOF, is sent last.
func pumpOutput(r io.Reader, size int, output chan<- chunk, done <-chan struct{}) {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			select {
			case output <- chunk{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case output <- chunk{err: err}:
			case <-done:
			}
			return
		}
	}
}
