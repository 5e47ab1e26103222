/*
 * Copyright 2017 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package easycrc

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Model is a Variant of any width.
type Model interface {
	Name() string
	Width() int
	Poly64() uint64
	Init64() uint64
	XorOut64() uint64
	ReflectIn() bool
	ReflectOut() bool
	NewHash() Hash
}

var (
	_ Model = (*Variant[uint8])(nil)
	_ Model = (*Variant[uint64])(nil)
)

type registry struct {
	sync.RWMutex
	byName map[string]Model
	models []Model
}

var models = &registry{byName: make(map[string]Model)}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Register makes m available to Lookup under its name and aliases. Names are
// case insensitive.
func Register(m Model, aliases ...string) error {
	names := append([]string{m.Name()}, aliases...)

	models.Lock()
	defer models.Unlock()
	for _, name := range names {
		if _, ok := models.byName[normalize(name)]; ok {
			return errors.Wrapf(ErrDuplicateVariant, "name: %q", name)
		}
	}
	for _, name := range names {
		models.byName[normalize(name)] = m
	}
	models.models = append(models.models, m)
	return nil
}

// Lookup returns the model registered under name or one of its aliases.
func Lookup(name string) (Model, error) {
	models.RLock()
	defer models.RUnlock()
	m, ok := models.byName[normalize(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "name: %q", name)
	}
	return m, nil
}

// Models returns every registered model ordered by width, then name.
func Models() []Model {
	models.RLock()
	out := make([]Model, len(models.models))
	copy(out, models.models)
	models.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Width() != out[j].Width() {
			return out[i].Width() < out[j].Width()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Define builds a Model from constants known only at run time. The model is
// not registered; every call returns a new Variant with its own table.
func Define(name string, width int, poly, init, xorOut uint64, reflectIn, reflectOut bool) (Model, error) {
	if width != 8 && width != 16 && width != 32 && width != 64 {
		return nil, errors.Wrapf(ErrInvalidWidth, "width: %d", width)
	}
	if width < 64 {
		limit := uint64(1)<<uint(width) - 1
		for _, v := range []uint64{poly, init, xorOut} {
			if v > limit {
				return nil, errors.Wrapf(ErrInvalidParams, "%#x needs more than %d bits", v, width)
			}
		}
	}

	switch width {
	case 8:
		return NewVariant(name, Params[uint8]{
			Poly: uint8(poly), Init: uint8(init), XorOut: uint8(xorOut),
			ReflectIn: reflectIn, ReflectOut: reflectOut,
		}), nil
	case 16:
		return NewVariant(name, Params[uint16]{
			Poly: uint16(poly), Init: uint16(init), XorOut: uint16(xorOut),
			ReflectIn: reflectIn, ReflectOut: reflectOut,
		}), nil
	case 32:
		return NewVariant(name, Params[uint32]{
			Poly: uint32(poly), Init: uint32(init), XorOut: uint32(xorOut),
			ReflectIn: reflectIn, ReflectOut: reflectOut,
		}), nil
	default:
		return NewVariant(name, Params[uint64]{
			Poly: poly, Init: init, XorOut: xorOut,
			ReflectIn: reflectIn, ReflectOut: reflectOut,
		}), nil
	}
}
