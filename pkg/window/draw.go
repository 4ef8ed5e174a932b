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
package window

import (
	"unicode/utf8"

	"github.com/timburks/iosplit/pkg/buffer"
	"github.com/timburks/iosplit/types"
)

const tabWidth = 8

// Draw projects the visible rows of a buffer onto a display, starting
// at the view top. The cells under the input and output cursors are
// highlighted. Lines below the last row are cleared. Draw never
// modifies the buffer.
func Draw(d types.Display, b *buffer.Buffer, visibleRows int) {
	cols := d.GetSize().Cols
	line := 0
	for id := b.GetView().Top; id.IsValid() && line < visibleRows; id = b.Next(id) {
		r, err := b.GetRow(id)
		if err != nil {
			break
		}
		drawRow(d, line, cols, r)
		line++
	}
	for ; line < visibleRows; line++ {
		d.ClearLine(line, 0)
	}
}

func drawRow(d types.Display, line, cols int, r *buffer.Row) {
	in, out := r.GetBuffer().GetInputCursor(), r.GetBuffer().GetOutputCursor()
	text := r.Bytes()
	col := 0
	setCell := func(c rune, style types.Style) {
		if col < cols {
			d.SetCell(col, line, c, style)
		}
		col++
	}
	i := 0
	for i < len(text) {
		c, size := utf8.DecodeRune(text[i:])
		style := cursorStyle(r.GetID(), i, i+size, in, out)
		switch c {
		case '\r':
		case '\t':
			next := (col/tabWidth + 1) * tabWidth
			setCell(' ', style)
			for col < next {
				setCell(' ', types.StyleNormal)
			}
		default:
			setCell(c, style)
		}
		i += size
	}
	// a cursor at the end of the row sits on the next free cell
	if style := cursorStyle(r.GetID(), i, i+1, in, out); style != types.StyleNormal {
		setCell(' ', style)
	}
	if col < cols {
		d.ClearLine(line, col)
	}
}

// cursorStyle returns the highlight for the bytes [start, end) of a row.
// The input cursor wins when both cursors share a cell.
func cursorStyle(id buffer.RowID, start, end int, in, out *buffer.Cursor) types.Style {
	switch {
	case in.Row == id && in.Col >= start && in.Col < end:
		return types.StyleInputCursor
	case out.Row == id && out.Col >= start && out.Col < end:
		return types.StyleOutputCursor
	default:
		return types.StyleNormal
	}
}
