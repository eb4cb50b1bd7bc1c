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

package progressbar

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// EasyProgressUtil counts finished jobs of a batch, for example files converted.
type EasyProgressUtil struct {
	*progressbar.ProgressBar
}

var (
	width           = 50
	optionSetWidth  = progressbar.OptionSetWidth(width)
	optionShowCount = progressbar.OptionShowCount()
	OptionShowIts   = progressbar.OptionShowIts()
	optionSetTheme  = progressbar.OptionSetTheme(progressbar.Theme{
		Saucer:        "=",
		SaucerHead:    ">",
		SaucerPadding: " ",
		BarStart:      "[",
		BarEnd:        "]",
	})
)

// NewEasyProgressUtil create a new progress bar on stderr like this:
// [converting]  94% [==============================================>   ] (18/19, 6 it/s) [3s:0s]
func NewEasyProgressUtil(total int, describe string) *EasyProgressUtil {
	return NewEasyProgressUtilTo(os.Stderr, total, describe, true)
}

// NewEasyProgressUtilTo writes the bar to w. Colors are written only when color is set.
func NewEasyProgressUtilTo(w io.Writer, total int, describe string, color bool) *EasyProgressUtil {
	return &EasyProgressUtil{
		progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(color),
			optionSetWidth,
			optionSetTheme,
			optionShowCount,
			OptionShowIts,
			progressbar.OptionSetDescription(describe),
			progressbar.OptionOnCompletion(func() {
				_, _ = io.WriteString(w, "\n")
			}),
		),
	}
}

// Increment add 1 to progress bar
func (epu *EasyProgressUtil) Increment() {
	if err := epu.Add(1); err != nil {
		logrus.Errorf("failed to increment progress bar, err: %s", err)
	}
}

// Fail print error message
func (epu *EasyProgressUtil) Fail(err error) {
	if err != nil {
		epu.Describe(err.Error())
	}
}
