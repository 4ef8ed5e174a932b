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

// Insert writes text into the buffer at cursor c. The co-cursor co is
// adjusted so that it keeps its logical position. Carriage returns are
// dropped; each newline starts a new row after the cursor's row.
// visibleRows is the height of the text area, used to scroll the view.
func (b *Buffer) Insert(c, co *Cursor, text []byte, visibleRows int) error {
	for _, ch := range text {
		if ch == '\r' {
			continue
		}
		r, err := b.GetRow(c.Row)
		if err != nil {
			return err
		}
		if ch == '\n' {
			b.insertNewline(r, c, co, visibleRows)
		} else {
			b.insertCharacter(r, c, co, ch)
		}
	}
	return nil
}

func (b *Buffer) insertNewline(r *Row, c, co *Cursor, visibleRows int) {
	if c.Kind == Output {
		// the row now holds finished output
		r.promptBoundary = 0
	}
	follow := co.Trails(c)
	n := b.insertAfter(r)
	c.Row = n.id
	c.Col = 0
	if follow {
		co.Row = n.id
		co.Col = 0
	}
	d := -1
	if visibleRows > 0 {
		d = b.distance(b.view.Top, n.id, visibleRows)
	}
	switch {
	case d < 0:
		// the new row may be above the top
		b.lineStale = true
	case d >= visibleRows:
		b.scrollDown()
	}
}

func (b *Buffer) insertCharacter(r *Row, c, co *Cursor, ch byte) {
	if c.Col > len(r.text) {
		c.Col = len(r.text)
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if co.Trails(c) {
		co.Col++
	}
	if c.Kind == Input && c.Col < r.promptBoundary {
		r.promptBoundary++
	}
	r.insertByte(c.Col, ch)
	c.Col++
	if c.Kind == Output {
		r.promptBoundary = c.Col
	}
}
