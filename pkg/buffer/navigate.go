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
	"unicode/utf8"

	"github.com/timburks/iosplit/types"
)

// MoveCursor moves the input cursor. Up and down walk the row history,
// left and right move by one character within the current row. The
// column is clamped to the length of the row.
func (b *Buffer) MoveCursor(direction int, visibleRows int) error {
	c := &b.input
	r, err := b.GetRow(c.Row)
	if err != nil {
		return err
	}
	switch direction {
	case types.MoveUp:
		if p := b.row(r.prev); p != nil {
			if b.view.Top == c.Row {
				b.scrollUp()
			}
			c.Row = p.id
			r = p
		}
	case types.MoveDown:
		if n := b.row(r.next); n != nil {
			c.Row = n.id
			r = n
			if visibleRows > 0 && b.distance(b.view.Top, n.id, visibleRows) >= visibleRows {
				b.scrollDown()
			}
		}
	case types.MoveLeft:
		if c.Col > 0 {
			col := min(c.Col, len(r.text))
			_, size := utf8.DecodeLastRune(r.text[:col])
			c.Col = col - size
		}
	case types.MoveRight:
		if c.Col < len(r.text) {
			_, size := utf8.DecodeRune(r.text[c.Col:])
			c.Col += size
		}
	}
	// don't go past the end of the current row
	if c.Col > len(r.text) {
		c.Col = len(r.text)
	}
	return nil
}

// Backspace deletes the character before the input cursor. Bytes that
// are not valid UTF-8 are deleted one at a time.
func (b *Buffer) Backspace() error {
	c := &b.input
	r, err := b.GetRow(c.Row)
	if err != nil {
		return err
	}
	if c.Col > len(r.text) {
		c.Col = len(r.text)
	}
	_, size := utf8.DecodeLastRune(r.text[:c.Col])
	for i := 0; i < size; i++ {
		b.deleteBefore(r, c)
	}
	return nil
}

// deleteBefore removes the byte before c, which must be past column 0.
func (b *Buffer) deleteBefore(r *Row, c *Cursor) {
	col := c.Col - 1
	if b.output.Trails(c) {
		b.output.Col--
	}
	r.deleteByte(col)
	if col < r.promptBoundary {
		r.promptBoundary--
	}
	c.Col--
}

// Scroll moves the view so that the input cursor's row is one of the
// visibleRows rows starting at the view top. The view's line number
// follows each step and is recounted from the head only after rows were
// removed or inserted above the top.
func (b *Buffer) Scroll(visibleRows int) {
	if b.row(b.view.Top) == nil {
		b.view.Top = b.head
		b.lineStale = true
	}
	if visibleRows > 0 {
		if d, ok := b.offset(b.view.Top, b.input.Row); ok {
			switch {
			case d < 0:
				// scroll up
				b.view.Top = b.input.Row
				b.view.Line += d
			case d >= visibleRows:
				// scroll down
				for ; d >= visibleRows; d-- {
					b.scrollDown()
				}
			}
		}
	}
	if b.lineStale {
		b.view.Line = b.LineOf(b.view.Top)
		b.lineStale = false
	}
}

// Compact removes rows from the head of the buffer until at most limit
// rows remain. Rows holding a cursor are never removed. A limit of zero
// or less leaves the buffer unbounded. Compact returns the number of
// removed rows.
func (b *Buffer) Compact(limit int) int {
	removed := 0
	for limit > 0 && b.count > limit && !b.holdsCursor(b.head) {
		if !b.RemoveRow(b.head) {
			break
		}
		b.dropped++
		removed++
	}
	return removed
}
