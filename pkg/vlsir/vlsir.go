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

package vlsir

import (
	"github.com/vlsir/vlsir-go/pkg/vlsir/circuit"
	"github.com/vlsir/vlsir-go/pkg/vlsir/layout/raw"
	"github.com/vlsir/vlsir-go/pkg/vlsir/tech"
	"github.com/vlsir/vlsir-go/pkg/vlsir/utils"
	"github.com/vlsir/vlsir-go/protos"
)

// Version is the version of the VLSIR schemas.
const Version = protos.Version

// ============================================================================
// Circuit
// ============================================================================

type (
	Interface = circuit.Interface
	Module    = circuit.Module
)

// ============================================================================
// Raw layout
// ============================================================================

type (
	Abstract     = raw.Abstract
	AbstractPort = raw.AbstractPort
	Cell         = raw.Cell
	Layout       = raw.Layout
	Library      = raw.Library
	Instance     = raw.Instance
	Layer        = raw.Layer
	LayerShapes  = raw.LayerShapes
	Path         = raw.Path
	Point        = raw.Point
	Polygon      = raw.Polygon
	Rectangle    = raw.Rectangle
	TextElement  = raw.TextElement
	Units        = raw.Units
)

// ============================================================================
// Technology
// ============================================================================

type (
	Technology       = tech.Technology
	Package          = tech.Package
	LayerPurpose     = tech.LayerPurpose
	LayerPurposeType = tech.LayerPurposeType
	LayerInfo        = tech.LayerInfo
)

// ============================================================================
// Utilities
// ============================================================================

type (
	SIPrefix        = utils.SIPrefix
	Prefixed        = utils.Prefixed
	ParamValue      = utils.ParamValue
	Param           = utils.Param
	QualifiedName   = utils.QualifiedName
	Reference       = utils.Reference
	LibraryMetadata = utils.LibraryMetadata
	AuthorMetadata  = utils.AuthorMetadata
)

const (
	SIPrefix_YOCTO = utils.SIPrefix_YOCTO
	SIPrefix_ZEPTO = utils.SIPrefix_ZEPTO
	SIPrefix_ATTO  = utils.SIPrefix_ATTO
	SIPrefix_FEMTO = utils.SIPrefix_FEMTO
	SIPrefix_PICO  = utils.SIPrefix_PICO
	SIPrefix_NANO  = utils.SIPrefix_NANO
	SIPrefix_MICRO = utils.SIPrefix_MICRO
	SIPrefix_MILLI = utils.SIPrefix_MILLI
	SIPrefix_CENTI = utils.SIPrefix_CENTI
	SIPrefix_DECI  = utils.SIPrefix_DECI
	SIPrefix_DECA  = utils.SIPrefix_DECA
	SIPrefix_HECTO = utils.SIPrefix_HECTO
	SIPrefix_KILO  = utils.SIPrefix_KILO
	SIPrefix_MEGA  = utils.SIPrefix_MEGA
	SIPrefix_GIGA  = utils.SIPrefix_GIGA
	SIPrefix_TERA  = utils.SIPrefix_TERA
	SIPrefix_PETA  = utils.SIPrefix_PETA
	SIPrefix_EXA   = utils.SIPrefix_EXA
	SIPrefix_ZETTA = utils.SIPrefix_ZETTA
	SIPrefix_YOTTA = utils.SIPrefix_YOTTA
	SIPrefix_UNIT  = utils.SIPrefix_UNIT
)
