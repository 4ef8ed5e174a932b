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

import "io"

// Submit sends the pending text of the input row to w followed by a
// newline. The row is then cleared and marked as a command boundary,
// the output cursor moves to its start, and stale rows that follow it
// are purged. Submit returns the number of purged rows.
func (b *Buffer) Submit(w io.Writer) (int, error) {
	r, err := b.GetRow(b.input.Row)
	if err != nil {
		return 0, err
	}
	if len(r.text) > 0 {
		line := append([]byte(r.TextAfter(r.promptBoundary)), '\n')
		n, err := w.Write(line)
		if err != nil {
			return 0, err
		}
		if n < len(line) {
			return 0, io.ErrShortWrite
		}
	}
	r.reset()
	r.committed = true
	b.input.Col = 0
	b.output.Row = r.id
	b.output.Col = 0
	return b.purgeAfter(r), nil
}

// purgeAfter removes the rows between r and the next committed row,
// or through the end of the sequence if there is none.
// Rows holding a cursor are kept.
func (b *Buffer) purgeAfter(r *Row) int {
	purged := 0
	id := r.next
	for {
		n := b.row(id)
		if n == nil || n.committed || b.holdsCursor(id) {
			return purged
		}
		id = n.next
		if b.RemoveRow(n.id) {
			purged++
		}
	}
}
