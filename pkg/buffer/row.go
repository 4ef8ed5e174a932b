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

const initialRowCapacity = 64

// A Row is one line of session text.
type Row struct {
	id             RowID
	prev           RowID
	next           RowID
	buffer         *Buffer
	text           []byte
	promptBoundary int  // leading bytes already displayed as prompt or echo
	committed      bool // true when the row was submitted as a command
}

func (r *Row) GetID() RowID {
	return r.id
}

func (r *Row) GetBuffer() *Buffer {
	return r.buffer
}

func (r *Row) Bytes() []byte {
	return r.text
}

func (r *Row) DisplayText() string {
	return string(r.text)
}

func (r *Row) Length() int {
	return len(r.text)
}

func (r *Row) Capacity() int {
	return cap(r.text)
}

func (r *Row) GetPromptBoundary() int {
	return r.promptBoundary
}

func (r *Row) IsCommitted() bool {
	return r.committed
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < 0 {
		col = 0
	}
	if col < len(r.text) {
		return string(r.text[col:])
	}
	return ""
}

// grow makes room for at least one more byte, doubling the capacity.
func (r *Row) grow() {
	if len(r.text) < cap(r.text) {
		return
	}
	n := cap(r.text) * 2
	if n == 0 {
		n = initialRowCapacity
	}
	text := make([]byte, len(r.text), n)
	copy(text, r.text)
	r.text = text
}

func (r *Row) insertByte(col int, c byte) {
	r.grow()
	r.text = r.text[:len(r.text)+1]
	copy(r.text[col+1:], r.text[col:])
	r.text[col] = c
}

func (r *Row) deleteByte(col int) {
	copy(r.text[col:], r.text[col+1:])
	r.text = r.text[:len(r.text)-1]
}

// reset drops the text and its storage.
func (r *Row) reset() {
	r.text = nil
	r.promptBoundary = 0
}
