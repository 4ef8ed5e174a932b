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
	"fmt"

	"github.com/timburks/iosplit/pkg/buffer"
	"github.com/timburks/iosplit/types"
)

// A Window shows a buffer above a one-line info bar.
type Window struct {
	buffer *buffer.Buffer
	name   string
	size   types.Size
}

func NewWindow(b *buffer.Buffer, name string) *Window {
	return &Window{buffer: b, name: name}
}

func (w *Window) SetSize(size types.Size) {
	w.size = size
}

func (w *Window) GetSize() types.Size {
	return w.size
}

// TextRows returns the number of rows available for buffer text.
func (w *Window) TextRows() int {
	return TextRowsFor(w.size)
}

// TextRowsFor returns the number of text rows in a window of a given size.
func TextRowsFor(size types.Size) int {
	// reserve the last row for the info bar
	if size.Rows > 1 {
		return size.Rows - 1
	}
	return 1
}

// Render scrolls the buffer to keep the input cursor visible, draws it,
// draws the info bar and flushes the display.
func (w *Window) Render(d types.Display) error {
	textRows := w.TextRows()
	w.buffer.Scroll(textRows)
	Draw(d, w.buffer, textRows)
	if w.size.Rows > 1 {
		infoText := w.computeInfoBarText(w.size.Cols)
		x := 0
		for _, ch := range infoText {
			if x >= w.size.Cols {
				break
			}
			d.SetCell(x, textRows, ch, types.StyleInfoBar)
			x++
		}
	}
	return d.Flush()
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(length int) string {
	b := w.buffer
	in := b.GetInputCursor()
	finalText := fmt.Sprintf(" %d:%d  %d rows ", b.CursorLine(in)+1, in.Col+1, b.GetRowCount())
	text := fmt.Sprintf(" %s", w.name)
	for len(text) < length-len(finalText) {
		text = text + " "
	}
	text += finalText
	return text
}
