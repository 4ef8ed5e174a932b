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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the duration of a test.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SHELL", "IOSPLIT_SHELL", "IOSPLIT_CHILD_TERM", "IOSPLIT_LOG_FILE",
		"IOSPLIT_LOG_LEVEL", "IOSPLIT_LOG_DEV", "IOSPLIT_READ_CHUNK", "IOSPLIT_HISTORY_LIMIT"} {
		unsetenv(t, key)
	}
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", cfg.Shell)
	assert.Equal(t, "dumb", cfg.ChildTerm)
	assert.Equal(t, filepath.Join("/home/tester", ".iosplitlog"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDev)
	assert.Equal(t, 4096, cfg.ReadChunk)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("IOSPLIT_SHELL", "/bin/zsh")
	t.Setenv("IOSPLIT_CHILD_TERM", "vt100")
	t.Setenv("IOSPLIT_LOG_FILE", "/tmp/iosplit.log")
	t.Setenv("IOSPLIT_LOG_LEVEL", "debug")
	t.Setenv("IOSPLIT_LOG_DEV", "true")
	t.Setenv("IOSPLIT_READ_CHUNK", "512")
	t.Setenv("IOSPLIT_HISTORY_LIMIT", "1000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Shell:        "/bin/zsh",
		ChildTerm:    "vt100",
		LogFile:      "/tmp/iosplit.log",
		LogLevel:     "debug",
		LogDev:       true,
		ReadChunk:    512,
		HistoryLimit: 1000,
	}, cfg)
}

func TestLoadFallsBackToShell(t *testing.T) {
	unsetenv(t, "IOSPLIT_SHELL")
	t.Setenv("SHELL", "/bin/bash")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/bin/bash", cfg.Shell)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("IOSPLIT_SHELL", "/bin/sh")
	t.Setenv("IOSPLIT_READ_CHUNK", "lots")
	_, err := Load()
	assert.ErrorContains(t, err, "failed to load config")

	t.Setenv("IOSPLIT_READ_CHUNK", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "read chunk")

	t.Setenv("IOSPLIT_READ_CHUNK", "4096")
	t.Setenv("IOSPLIT_HISTORY_LIMIT", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "history limit")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.Shell = ""
	assert.EqualError(t, cfg.Validate(), "invalid config: shell is empty")
}
