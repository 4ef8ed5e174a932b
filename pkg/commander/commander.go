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
package commander

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/timburks/iosplit/pkg/buffer"
	"github.com/timburks/iosplit/types"
)

type handler func(c *Commander, a Action) error

var handlers = map[ActionKind]handler{
	ActionNewline:   (*Commander).submit,
	ActionUp:        moveCursor(types.MoveUp),
	ActionDown:      moveCursor(types.MoveDown),
	ActionLeft:      moveCursor(types.MoveLeft),
	ActionRight:     moveCursor(types.MoveRight),
	ActionBackspace: (*Commander).backspace,
	ActionControl:   (*Commander).sendControl,
	ActionPrintable: (*Commander).insert,
}

// The Commander applies keyboard and shell input to a buffer.
type Commander struct {
	buffer       *buffer.Buffer
	child        io.Writer // channel to the shell
	log          *zap.Logger
	visibleRows  int // height of the text area
	historyLimit int // rows kept in the buffer, 0 for no limit
}

func NewCommander(b *buffer.Buffer, child io.Writer, log *zap.Logger) *Commander {
	if log == nil {
		log = zap.NewNop()
	}
	return &Commander{buffer: b, child: child, log: log, visibleRows: 1}
}

func (c *Commander) SetVisibleRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	c.visibleRows = rows
}

func (c *Commander) GetVisibleRows() int {
	return c.visibleRows
}

func (c *Commander) SetHistoryLimit(limit int) {
	c.historyLimit = limit
}

// ProcessKey classifies a key event and performs the resulting action.
func (c *Commander) ProcessKey(event *types.Event) error {
	a := Classify(event)
	h, ok := handlers[a.Kind]
	if !ok {
		return nil
	}
	return h(c, a)
}

// ProcessOutput inserts a chunk of shell output at the output cursor.
// Chunks need not end on line boundaries.
func (c *Commander) ProcessOutput(data []byte) error {
	b := c.buffer
	if err := b.Insert(b.GetOutputCursor(), b.GetInputCursor(), data, c.visibleRows); err != nil {
		return fmt.Errorf("insert output: %w", err)
	}
	if n := b.Compact(c.historyLimit); n > 0 {
		c.log.Debug("compacted history", zap.Int("rows", n))
	}
	return nil
}

func (c *Commander) submit(a Action) error {
	purged, err := c.buffer.Submit(c.child)
	if err != nil {
		return fmt.Errorf("write to shell: %w", err)
	}
	c.log.Debug("submitted command", zap.Int("purged", purged))
	return nil
}

func moveCursor(direction int) handler {
	return func(c *Commander, a Action) error {
		return c.buffer.MoveCursor(direction, c.visibleRows)
	}
}

func (c *Commander) backspace(a Action) error {
	return c.buffer.Backspace()
}

// sendControl writes control bytes to the shell without buffering them.
func (c *Commander) sendControl(a Action) error {
	for _, ch := range a.Bytes {
		n, err := c.child.Write([]byte{ch})
		if err != nil {
			return fmt.Errorf("write to shell: %w", err)
		}
		if n != 1 {
			return fmt.Errorf("write to shell: %w", io.ErrShortWrite)
		}
	}
	return nil
}

func (c *Commander) insert(a Action) error {
	b := c.buffer
	return b.Insert(b.GetInputCursor(), b.GetOutputCursor(), a.Bytes, c.visibleRows)
}
