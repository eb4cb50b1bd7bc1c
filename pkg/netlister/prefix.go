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

package netlister

import (
	"github.com/pkg/errors"

	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
)

// prefixFunc returns the suffix a format writes after a number scaled by an SI prefix.
type prefixFunc func(utils.SIPrefix) (string, error)

var exponents = map[utils.SIPrefix]string{
	utils.SIPrefix_YOCTO: "e-24",
	utils.SIPrefix_ZEPTO: "e-21",
	utils.SIPrefix_ATTO:  "e-18",
	utils.SIPrefix_FEMTO: "e-15",
	utils.SIPrefix_PICO:  "e-12",
	utils.SIPrefix_NANO:  "e-9",
	utils.SIPrefix_MICRO: "e-6",
	utils.SIPrefix_MILLI: "e-3",
	utils.SIPrefix_CENTI: "e-2",
	utils.SIPrefix_DECI:  "e-1",
	utils.SIPrefix_DECA:  "e1",
	utils.SIPrefix_HECTO: "e2",
	utils.SIPrefix_KILO:  "e3",
	utils.SIPrefix_MEGA:  "e6",
	utils.SIPrefix_GIGA:  "e9",
	utils.SIPrefix_TERA:  "e12",
	utils.SIPrefix_PETA:  "e15",
	utils.SIPrefix_EXA:   "e18",
	utils.SIPrefix_ZETTA: "e21",
	utils.SIPrefix_YOTTA: "e24",
	utils.SIPrefix_UNIT:  "",
}

// SPICE scale factors are case-insensitive, so mega is "meg" and there is
// no letter for atto or peta.
var spiceLetters = map[utils.SIPrefix]string{
	utils.SIPrefix_FEMTO: "f",
	utils.SIPrefix_PICO:  "p",
	utils.SIPrefix_NANO:  "n",
	utils.SIPrefix_MICRO: "u",
	utils.SIPrefix_MILLI: "m",
	utils.SIPrefix_KILO:  "k",
	utils.SIPrefix_MEGA:  "meg",
	utils.SIPrefix_GIGA:  "g",
	utils.SIPrefix_TERA:  "t",
}

var spectreLetters = map[utils.SIPrefix]string{
	utils.SIPrefix_ATTO:  "a",
	utils.SIPrefix_FEMTO: "f",
	utils.SIPrefix_PICO:  "p",
	utils.SIPrefix_NANO:  "n",
	utils.SIPrefix_MICRO: "u",
	utils.SIPrefix_MILLI: "m",
	utils.SIPrefix_KILO:  "k",
	utils.SIPrefix_MEGA:  "M",
	utils.SIPrefix_GIGA:  "G",
	utils.SIPrefix_TERA:  "T",
	utils.SIPrefix_PETA:  "P",
}

func exponentPrefix(p utils.SIPrefix) (string, error) {
	s, ok := exponents[p]
	if !ok {
		return "", errors.Errorf("invalid SI prefix %d", int32(p))
	}
	return s, nil
}

func letterPrefix(letters map[utils.SIPrefix]string) prefixFunc {
	return func(p utils.SIPrefix) (string, error) {
		if s, ok := letters[p]; ok {
			return s, nil
		}
		return exponentPrefix(p)
	}
}

var (
	spicePrefix   = letterPrefix(spiceLetters)
	spectrePrefix = letterPrefix(spectreLetters)
	verilogPrefix = prefixFunc(exponentPrefix)
)
