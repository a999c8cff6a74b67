// This file is part of VIDCemu.
//
// VIDCemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VIDCemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VIDCemu.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is remembered and is used to identify the error. The Is()
// function checks whether an error was created with a specific pattern:
//
//	e := curated.Errorf("vidc: unknown variant: %s", name)
//
//	if curated.Is(e, "vidc: unknown variant: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// error chain. Sentinal patterns should be stored as a const string, suitably
// named and commented. For example, see the UnknownVariant pattern in the
// vidc package.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being between
// 'expected' and 'unexpected' errors.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. A chain is composed of parts separated by the
// sub-string ": ". This means that callers are free to wrap errors with a
// prefix that may already be present:
//
//	curated.Errorf("vidc: %v", curated.Errorf("vidc: bad variant"))
//
// produces the message "vidc: bad variant" and not "vidc: vidc: bad variant".
package curated
