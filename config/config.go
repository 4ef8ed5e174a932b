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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "iosplit"

const logFileName = ".iosplitlog"

// Config holds the settings of an iosplit session. Each field is read
// from IOSPLIT_<FIELD>; the shell also falls back to SHELL.
type Config struct {
	Shell        string `envconfig:"SHELL" default:"/bin/sh"`
	ChildTerm    string `split_words:"true" default:"dumb"` // TERM given to the shell
	LogFile      string `split_words:"true"`                // defaults to ~/.iosplitlog
	LogLevel     string `split_words:"true" default:"info"`
	LogDev       bool   `split_words:"true" default:"false"`
	ReadChunk    int    `split_words:"true" default:"4096"`
	HistoryLimit int    `split_words:"true" default:"0"` // rows kept, 0 for no limit
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Shell:        "/bin/sh",
		ChildTerm:    "dumb",
		LogFile:      defaultLogFile(),
		LogLevel:     "info",
		ReadChunk:    4096,
		HistoryLimit: 0,
	}
}

func (c *Config) Validate() error {
	if c.Shell == "" {
		return errors.New("invalid config: shell is empty")
	}
	if c.ReadChunk <= 0 {
		return fmt.Errorf("invalid config: read chunk must be positive, got %d", c.ReadChunk)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid config: history limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), logFileName)
	}
	return filepath.Join(home, logFileName)
}
