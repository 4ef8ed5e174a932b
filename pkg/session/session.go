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
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/creack/pty"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/timburks/iosplit/config"
	"github.com/timburks/iosplit/pkg/buffer"
	"github.com/timburks/iosplit/pkg/commander"
	"github.com/timburks/iosplit/pkg/window"
	"github.com/timburks/iosplit/types"
)

// ErrNotTerminal is returned when the session is not started from a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// CheckTerminal returns ErrNotTerminal unless fd is a terminal.
func CheckTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	return nil
}

// A Session connects a shell to a buffer.
type Session struct {
	config    *config.Config
	log       *zap.Logger
	cmd       *exec.Cmd
	pty       *os.File      // nil when the shell channel is not a pty
	child     io.ReadWriter // channel to the shell
	buffer    *buffer.Buffer
	window    *window.Window
	commander *commander.Commander
}

// Start spawns the configured shell in a pseudo-terminal sized to fit
// the text area of a screen of the given size.
func Start(cfg *config.Config, size types.Size, log *zap.Logger) (*Session, error) {
	cmd := exec.Command(cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM="+cfg.ChildTerm)
	ptmx, err := pty.StartWithSize(cmd, winsize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", cfg.Shell, err)
	}
	s := newSession(cfg, ptmx, log)
	s.cmd = cmd
	s.pty = ptmx
	s.resize(size)
	s.log.Info("started shell", zap.String("shell", cfg.Shell), zap.Int("pid", cmd.Process.Pid))
	return s, nil
}

// newSession builds a session around an open channel to a shell.
func newSession(cfg *config.Config, child io.ReadWriter, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	b := buffer.NewBuffer()
	c := commander.NewCommander(b, child, log)
	c.SetHistoryLimit(cfg.HistoryLimit)
	return &Session{
		config:    cfg,
		log:       log,
		child:     child,
		buffer:    b,
		window:    window.NewWindow(b, filepath.Base(cfg.Shell)),
		commander: c,
	}
}

func (s *Session) GetBuffer() *buffer.Buffer {
	return s.buffer
}

// winsize returns the pty size for the text area of a screen.
func winsize(size types.Size) *pty.Winsize {
	return &pty.Winsize{
		Rows: uint16(window.TextRowsFor(size)),
		Cols: uint16(max(size.Cols, 1)),
	}
}

// resize fits the window and the shell's terminal to a new screen size.
func (s *Session) resize(size types.Size) {
	s.window.SetSize(size)
	s.commander.SetVisibleRows(s.window.TextRows())
	if s.pty == nil {
		return
	}
	if err := pty.Setsize(s.pty, winsize(size)); err != nil {
		s.log.Warn("failed to resize pty", zap.Error(err))
		return
	}
	s.log.Debug("resized", zap.Int("rows", size.Rows), zap.Int("cols", size.Cols))
}

// Close closes the shell's terminal and waits for the shell to exit.
func (s *Session) Close() error {
	if s.pty == nil {
		return nil
	}
	err := s.pty.Close()
	if s.cmd != nil {
		if werr := s.cmd.Wait(); werr != nil {
			s.log.Info("shell exited", zap.Error(werr))
		} else {
			s.log.Info("shell exited")
		}
	}
	return err
}
