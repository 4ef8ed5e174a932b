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
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/timburks/iosplit/types"
)

// terminal is the part of termbox a Screen uses. Only PollEvent may be
// called from a goroutine other than the one that draws.
type terminal interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Size() (int, int)
	Flush() error
	PollEvent() termbox.Event
}

type termboxTerminal struct{}

func (termboxTerminal) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxTerminal) Size() (int, int) {
	return termbox.Size()
}

func (termboxTerminal) Flush() error {
	return termbox.Flush()
}

func (termboxTerminal) PollEvent() termbox.Event {
	return termbox.PollEvent()
}

// The Screen connects a session to the user's terminal.
type Screen struct {
	terminal terminal
	size     types.Size // size at the last GetSize
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	s := &Screen{terminal: termboxTerminal{}}
	s.GetSize()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) SetCell(col int, row int, c rune, style types.Style) {
	fg, bg := attributes(style)
	s.terminal.SetCell(col, row, c, fg, bg)
}

func (s *Screen) ClearLine(row int, fromCol int) {
	for col := fromCol; col < s.size.Cols; col++ {
		s.terminal.SetCell(col, row, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *Screen) GetSize() types.Size {
	s.size.Cols, s.size.Rows = s.terminal.Size()
	return s.size
}

func (s *Screen) Flush() error {
	return s.terminal.Flush()
}

func attributes(style types.Style) (termbox.Attribute, termbox.Attribute) {
	switch style {
	case types.StyleInputCursor:
		return termbox.ColorDefault | termbox.AttrReverse, termbox.ColorDefault
	case types.StyleOutputCursor:
		return termbox.ColorBlack, termbox.ColorYellow
	case types.StyleInfoBar:
		return termbox.ColorBlack | termbox.AttrBold, termbox.ColorWhite
	default:
		return termbox.ColorDefault, termbox.ColorDefault
	}
}

// GetNextEvent waits for the next terminal event. It only polls; a
// resize is drawn by whoever renders next.
func (s *Screen) GetNextEvent() *types.Event {
	event := s.terminal.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &types.Event{Type: types.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		return &types.Event{Type: types.EventResize, Width: event.Width, Height: event.Height}
	case termbox.EventError:
		return &types.Event{Type: types.EventError, Err: event.Err}
	default:
		return &types.Event{Type: types.EventOther}
	}
}

// key maps termbox keys to ours. Keys below 0x80 are the bytes they
// produce in both.
func key(k termbox.Key) types.Key {
	if k < 0x80 {
		return types.Key(k)
	}
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	default:
		return types.KeyUnsupported
	}
}
