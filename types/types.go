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
package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventOther  = 3
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Keys below 0x80 carry the control byte they produce.
type Key uint16

const (
	KeyCtrlSpace  Key = 0x00
	KeyCtrlC      Key = 0x03
	KeyCtrlD      Key = 0x04
	KeyBackspace  Key = 0x08
	KeyTab        Key = 0x09
	KeyCtrlJ      Key = 0x0A
	KeyEnter      Key = 0x0D
	KeyEsc        Key = 0x1B
	KeySpace      Key = 0x20
	KeyBackspace2 Key = 0x7F
)

const (
	KeyArrowUp Key = 0xFFFF - iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyUnsupported
)

type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Width  int
	Height int
	Err    error
}

// Cell styles understood by a Display.
type Style int

const (
	StyleNormal Style = iota
	StyleInputCursor
	StyleOutputCursor
	StyleInfoBar
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Display is a grid of character cells.
type Display interface {
	SetCell(col, row int, c rune, style Style)
	ClearLine(row, fromCol int)
	GetSize() Size
	Flush() error
}

// A Screen is a Display that also produces keyboard and resize events.
type Screen interface {
	Display
	GetNextEvent() *Event
	Close()
}
