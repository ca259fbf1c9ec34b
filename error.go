// seehuhn.de/go/iconenc - encoding vectors for icon fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package iconenc

import (
	"fmt"
)

// ConfigError indicates an invalid setting, for example a page capacity
// which is not positive.  Configuration errors abort the run.
type ConfigError struct {
	Reason string
}

func (err *ConfigError) Error() string {
	return "iconenc: invalid configuration: " + err.Reason
}

func configError(format string, a ...any) error {
	return &ConfigError{
		Reason: fmt.Sprintf(format, a...),
	}
}

// LookupError indicates that a key was not found in one of the static
// tables, for example a metric resource name which matches no font family.
type LookupError struct {
	What string
	Key  string
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("iconenc: no %s for %q", err.What, err.Key)
}

// DuplicateGlyphError is returned by [Table.Add] if a glyph name has already
// been assigned a slot by a different font.
type DuplicateGlyphError struct {
	Glyph string
	Old   Assignment
	New   Assignment
}

func (err *DuplicateGlyphError) Error() string {
	return fmt.Sprintf("iconenc: glyph %q assigned twice (%s/%d and %s/%d)",
		err.Glyph, err.Old.Qualifier(), err.Old.Slot, err.New.Qualifier(), err.New.Slot)
}
