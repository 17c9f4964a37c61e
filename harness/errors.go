// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import "github.com/pkg/errors"

var (
	// ErrEmptyName is returned when an entry is registered without a name.
	ErrEmptyName = errors.New("harness: empty entry name")
	// ErrNilEntry is returned when an entry is registered without a function.
	ErrNilEntry = errors.New("harness: nil entry function")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("harness: duplicate entry")
	// ErrNoEntries is returned by Run on an empty suite.
	ErrNoEntries = errors.New("harness: no entries registered")
	// ErrUnknown is returned when a report has no result for a name.
	ErrUnknown = errors.New("harness: unknown entry")
	// ErrBadConfig is returned for an invalid Config or probe shape.
	ErrBadConfig = errors.New("harness: invalid config")
	// ErrOrder is returned by Report.Ordered when costs are out of order.
	ErrOrder = errors.New("harness: cost order violated")
)
