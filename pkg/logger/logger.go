// Copyright © 2022 The VLSIR Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Color modes accepted by ParseColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type LogOptions struct {
	// OutputPath is the log directory, default is `~/.vlsir/log`.
	OutputPath string
	// Verbose: if it is true will set debug log mode.
	Verbose bool
	// Quiet only logs warnings and errors. Verbose wins when both are set.
	Quiet bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	HideLogTime  bool
	HideLogPath  bool
	// Output defaults to stderr.
	Output               io.Writer
	RemoteLoggerURL      string
	RemoteLoggerTaskName string
	// LogToFile flag represent whether write log to disk, default is false.
	LogToFile bool
}

func Init(options LogOptions) error {
	switch {
	case options.Verbose:
		logrus.SetLevel(logrus.DebugLevel)
	case options.Quiet:
		logrus.SetLevel(logrus.WarnLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetReportCaller(true)
	if options.Output != nil {
		logrus.SetOutput(options.Output)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})

	if options.LogToFile {
		fh, err := NewFileHook(options.OutputPath)
		if err != nil {
			return errors.Wrap(err, "failed to init log file hook")
		}
		logrus.AddHook(fh)
	}

	if options.RemoteLoggerURL != "" {
		rl, err := NewRemoteLogHook(options.RemoteLoggerURL, options.RemoteLoggerTaskName)
		if err != nil {
			return errors.Wrap(err, "failed to init log remote hook")
		}
		logrus.AddHook(rl)
	}

	return nil
}

// ParseColorMode reports whether colors must be disabled for mode. Auto
// enables them only when stderr is a terminal.
func ParseColorMode(mode string) (disable bool, err error) {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return false, nil
	case ColorNever:
		return true, nil
	case ColorAuto, "":
		return !term.IsTerminal(int(os.Stderr.Fd())), nil
	}
	return false, errors.Errorf("invalid color mode %q, expected one of %s, %s, %s", mode, ColorAuto, ColorAlways, ColorNever)
}
