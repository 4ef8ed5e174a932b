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
package buffer

import (
	"errors"
	"strings"
)

// ErrStaleRow is returned when a handle refers to a row that was removed.
var ErrStaleRow = errors.New("stale row reference")

// A RowID is a stable handle to a row in a Buffer.
// The zero RowID refers to no row.
type RowID struct {
	index      int
	generation uint32
}

var NoRow RowID

func (id RowID) IsValid() bool {
	return id.generation != 0
}

// Cursor kinds
type Kind int

const (
	Input Kind = iota
	Output
)

func (k Kind) String() string {
	if k == Output {
		return "output"
	}
	return "input"
}

// A Cursor is a position in a buffer.
type Cursor struct {
	Row  RowID
	Col  int
	Kind Kind
}

// Trails reports whether c is on the same row as other, at or past its column.
func (c *Cursor) Trails(other *Cursor) bool {
	return c.Row == other.Row && c.Col >= other.Col
}

// A View is the scroll window over a buffer.
type View struct {
	Top  RowID // topmost visible row
	Line int   // absolute line number of Top
}

type slot struct {
	row        *Row // nil when the slot is free
	generation uint32
}

// A Buffer is the row sequence of one session.
// It always holds at least one row.
type Buffer struct {
	slots     []slot
	free      []int
	head      RowID
	count     int
	dropped   int  // rows removed from the head by Compact
	lineStale bool // view.Line must be recounted
	input     Cursor
	output    Cursor
	view      View
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	r := b.allocRow()
	b.head = r.id
	b.input = Cursor{Row: r.id, Kind: Input}
	b.output = Cursor{Row: r.id, Kind: Output}
	b.view = View{Top: r.id}
	return b
}

func (b *Buffer) allocRow() *Row {
	var index int
	if n := len(b.free); n > 0 {
		index = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		index = len(b.slots)
		b.slots = append(b.slots, slot{})
	}
	s := &b.slots[index]
	s.generation++
	r := &Row{id: RowID{index: index, generation: s.generation}, buffer: b}
	s.row = r
	b.count++
	return r
}

func (b *Buffer) releaseRow(r *Row) {
	b.slots[r.id.index].row = nil
	b.free = append(b.free, r.id.index)
	b.count--
	r.buffer = nil
}

// row returns the row for id, or nil if the handle is stale.
func (b *Buffer) row(id RowID) *Row {
	if !id.IsValid() || id.index < 0 || id.index >= len(b.slots) {
		return nil
	}
	s := b.slots[id.index]
	if s.row == nil || s.generation != id.generation {
		return nil
	}
	return s.row
}

func (b *Buffer) GetRow(id RowID) (*Row, error) {
	if r := b.row(id); r != nil {
		return r, nil
	}
	return nil, ErrStaleRow
}

func (b *Buffer) GetHead() RowID {
	return b.head
}

func (b *Buffer) GetRowCount() int {
	return b.count
}

func (b *Buffer) GetInputCursor() *Cursor {
	return &b.input
}

func (b *Buffer) GetOutputCursor() *Cursor {
	return &b.output
}

func (b *Buffer) GetView() *View {
	return &b.view
}

// Next returns the row after id, or NoRow.
func (b *Buffer) Next(id RowID) RowID {
	if r := b.row(id); r != nil {
		return r.next
	}
	return NoRow
}

// Prev returns the row before id, or NoRow.
func (b *Buffer) Prev(id RowID) RowID {
	if r := b.row(id); r != nil {
		return r.prev
	}
	return NoRow
}

// insertAfter links a new empty row after r.
func (b *Buffer) insertAfter(r *Row) *Row {
	n := b.allocRow()
	n.prev = r.id
	n.next = r.next
	if after := b.row(r.next); after != nil {
		after.prev = n.id
	}
	r.next = n.id
	return n
}

// RemoveRow unlinks the row for id. It refuses to remove the last
// remaining row and reports whether anything was removed.
// Cursors and the view top on the removed row move to a neighbor.
func (b *Buffer) RemoveRow(id RowID) bool {
	r := b.row(id)
	if r == nil || b.count == 1 {
		return false
	}
	heir := r.next
	if !heir.IsValid() {
		heir = r.prev
	}
	if p := b.row(r.prev); p != nil {
		p.next = r.next
	}
	if n := b.row(r.next); n != nil {
		n.prev = r.prev
	}
	if b.head == id {
		b.head = r.next
	}
	if b.view.Top == id {
		b.view.Top = heir
	}
	b.lineStale = true
	for _, c := range []*Cursor{&b.input, &b.output} {
		if c.Row == id {
			c.Row = heir
			c.Col = 0
		}
	}
	b.releaseRow(r)
	return true
}

func (b *Buffer) holdsCursor(id RowID) bool {
	return b.input.Row == id || b.output.Row == id
}

// distance counts the rows from one row forward to another, looking at
// most limit rows ahead. It returns -1 if to is not reached.
func (b *Buffer) distance(from, to RowID, limit int) int {
	id := from
	for d := 0; d <= limit; d++ {
		if id == to {
			return d
		}
		id = b.Next(id)
		if !id.IsValid() {
			break
		}
	}
	return -1
}

// offset returns the signed number of rows from one row to another,
// searching both directions at once. It reports false if to is not in
// the buffer.
func (b *Buffer) offset(from, to RowID) (int, bool) {
	forward, back := from, from
	for d := 0; forward.IsValid() || back.IsValid(); d++ {
		if forward == to {
			return d, true
		}
		if back == to {
			return -d, true
		}
		forward = b.Next(forward)
		back = b.Prev(back)
	}
	return 0, false
}

// CursorLine returns the absolute line number of a cursor's row.
// It is cheap when the row is at or below the view top and the view's
// line number is current, as it is after Scroll.
func (b *Buffer) CursorLine(c *Cursor) int {
	if !b.lineStale {
		if d, ok := b.offset(b.view.Top, c.Row); ok {
			return b.view.Line + d
		}
	}
	return b.LineOf(c.Row)
}

// LineOf returns the absolute line number of a row, counting rows
// dropped by compaction. It returns -1 for a stale handle.
func (b *Buffer) LineOf(id RowID) int {
	line := 0
	for r := b.row(b.head); r != nil; r = b.row(r.next) {
		if r.id == id {
			return b.dropped + line
		}
		line++
	}
	return -1
}

func (b *Buffer) scrollDown() {
	if next := b.Next(b.view.Top); next.IsValid() {
		b.view.Top = next
		b.view.Line++
	}
}

func (b *Buffer) scrollUp() {
	if prev := b.Prev(b.view.Top); prev.IsValid() {
		b.view.Top = prev
		b.view.Line--
	}
}

// Lines returns the text of every row in order.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.count)
	for r := b.row(b.head); r != nil; r = b.row(r.next) {
		lines = append(lines, r.DisplayText())
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
