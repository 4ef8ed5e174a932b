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
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/timburks/iosplit/config"
	"github.com/timburks/iosplit/logging"
	"github.com/timburks/iosplit/pkg/session"
	"github.com/timburks/iosplit/screen"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		return fail(err)
	}
	if err := session.CheckTerminal(int(os.Stdin.Fd())); err != nil {
		return fail(err)
	}

	// The terminal belongs to the display, so the log goes to a file.
	logger := logging.NewNop()
	if cfg.LogFile != "" {
		logger, err = logging.New(logging.Config{
			Level:       cfg.LogLevel,
			Development: cfg.LogDev,
			OutputPaths: []string{cfg.LogFile},
		})
		if err != nil {
			return fail(fmt.Errorf("failed to open log: %w", err))
		}
	}
	defer logger.Sync()

	// The screen draws the buffer and reports keys and resizes.
	s, err := screen.NewScreen()
	if err != nil {
		return fail(err)
	}

	// The session runs the shell and owns the buffer.
	ses, err := session.Start(cfg, s.GetSize(), logger)
	if err != nil {
		s.Close()
		return fail(err)
	}
	err = ses.Run(s)
	s.Close()
	if cerr := ses.Close(); cerr != nil {
		logger.Debug("closing pty", zap.Error(cerr))
	}
	if err != nil {
		logger.Error("session failed", zap.Error(err))
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "iosplit: %v\n", err)
	return 1
}
