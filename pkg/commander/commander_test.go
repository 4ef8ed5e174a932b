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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/iosplit/pkg/buffer"
	"github.com/timburks/iosplit/types"
)

func keyEvent(key types.Key) *types.Event {
	return &types.Event{Type: types.EventKey, Key: key}
}

func charEvent(ch rune) *types.Event {
	return &types.Event{Type: types.EventKey, Ch: ch}
}

func setup() (*Commander, *buffer.Buffer, *bytes.Buffer) {
	b := buffer.NewBuffer()
	var child bytes.Buffer
	c := NewCommander(b, &child, nil)
	c.SetVisibleRows(10)
	return c, b, &child
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pty closed")
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		event    *types.Event
		expected Action
	}{
		{keyEvent(types.KeyEnter), Action{Kind: ActionNewline}},
		{keyEvent(types.KeyCtrlJ), Action{Kind: ActionNewline}},
		{keyEvent(types.KeyArrowUp), Action{Kind: ActionUp}},
		{keyEvent(types.KeyArrowDown), Action{Kind: ActionDown}},
		{keyEvent(types.KeyArrowLeft), Action{Kind: ActionLeft}},
		{keyEvent(types.KeyArrowRight), Action{Kind: ActionRight}},
		{keyEvent(types.KeyBackspace), Action{Kind: ActionBackspace}},
		{keyEvent(types.KeyBackspace2), Action{Kind: ActionBackspace}},
		{keyEvent(types.KeyTab), Action{Kind: ActionPrintable, Bytes: []byte{'\t'}}},
		{keyEvent(types.KeySpace), Action{Kind: ActionPrintable, Bytes: []byte{' '}}},
		{charEvent('a'), Action{Kind: ActionPrintable, Bytes: []byte{'a'}}},
		{charEvent('é'), Action{Kind: ActionPrintable, Bytes: []byte("é")}},
		{keyEvent(types.KeyCtrlC), Action{Kind: ActionControl, Bytes: []byte{0x03}}},
		{keyEvent(types.KeyEsc), Action{Kind: ActionControl, Bytes: []byte{0x1b}}},
		{keyEvent(types.KeyCtrlSpace), Action{Kind: ActionControl, Bytes: []byte{0x00}}},
		{keyEvent(types.KeyUnsupported), Action{Kind: ActionNone}},
		{&types.Event{Type: types.EventResize, Width: 80, Height: 24}, Action{Kind: ActionNone}},
		{nil, Action{Kind: ActionNone}},
	} {
		assert.Equal(t, tc.expected, Classify(tc.event), "event %+v -> %s", tc.event, tc.expected.Kind)
	}
}

func TestControlKeysGoStraightToShell(t *testing.T) {
	c, b, child := setup()
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyCtrlC)))
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyCtrlD)))
	assert.Equal(t, []byte{0x03, 0x04}, child.Bytes())
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.GetInputCursor().Col)
}

func TestTypeAndSubmit(t *testing.T) {
	c, b, child := setup()
	require.NoError(t, c.ProcessOutput([]byte("$ ")))
	for _, ch := range "ls -x" {
		var event *types.Event
		if ch == ' ' {
			event = keyEvent(types.KeySpace)
		} else {
			event = charEvent(ch)
		}
		require.NoError(t, c.ProcessKey(event))
	}
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyBackspace2)))
	require.NoError(t, c.ProcessKey(charEvent('l')))
	assert.Equal(t, "$ ls -l", b.String())
	assert.Equal(t, 0, child.Len())

	require.NoError(t, c.ProcessKey(keyEvent(types.KeyEnter)))
	assert.Equal(t, "ls -l\n", child.String())
	r, err := b.GetRow(b.GetHead())
	require.NoError(t, err)
	assert.True(t, r.IsCommitted())
	assert.Equal(t, 0, r.Length())
}

func TestArrowKeys(t *testing.T) {
	c, b, _ := setup()
	require.NoError(t, c.ProcessOutput([]byte("first\r\nsecond\r\n$ ")))
	in := b.GetInputCursor()
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowLeft)))
	assert.Equal(t, 1, in.Col)
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowRight)))
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowRight)))
	assert.Equal(t, 2, in.Col)
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowUp)))
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowUp)))
	assert.Equal(t, b.GetHead(), in.Row)
	require.NoError(t, c.ProcessKey(keyEvent(types.KeyArrowDown)))
	assert.Equal(t, b.Next(b.GetHead()), in.Row)
}

func TestProcessOutputChunks(t *testing.T) {
	c, b, _ := setup()
	require.NoError(t, c.ProcessOutput([]byte("result\nline2")))
	require.NoError(t, c.ProcessOutput([]byte("\ndone\n")))
	assert.Equal(t, []string{"result", "line2", "done", ""}, b.Lines())
}

func TestProcessOutputCompactsHistory(t *testing.T) {
	c, b, _ := setup()
	c.SetHistoryLimit(3)
	require.NoError(t, c.ProcessOutput([]byte("1\n2\n3\n4\n5\n")))
	assert.Equal(t, []string{"4", "5", ""}, b.Lines())
	assert.Equal(t, 5, b.LineOf(b.GetOutputCursor().Row))
}

func TestWriteErrors(t *testing.T) {
	b := buffer.NewBuffer()
	c := NewCommander(b, failingWriter{}, nil)
	require.NoError(t, c.ProcessKey(charEvent('x')))
	err := c.ProcessKey(keyEvent(types.KeyEnter))
	assert.ErrorContains(t, err, "pty closed")
	err = c.ProcessKey(keyEvent(types.KeyCtrlC))
	assert.ErrorContains(t, err, "write to shell")
}

func TestSetVisibleRows(t *testing.T) {
	c, _, _ := setup()
	c.SetVisibleRows(0)
	assert.Equal(t, 1, c.GetVisibleRows())
	c.SetVisibleRows(40)
	assert.Equal(t, 40, c.GetVisibleRows())
}
