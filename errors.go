/*
Copyright © 2026 the Spatial4n authors.
This file is part of Spatial4n.

Spatial4n is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Spatial4n is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Spatial4n.  If not, see <http://www.gnu.org/licenses/>.
*/

package spatial4n

import "fmt"

// InvalidShapeError reports coordinates or geometry that cannot form a valid
// shape: out-of-bounds ordinates, malformed rectangle bounds, unsupported bare
// geometry collections, or a failed validity check.
type InvalidShapeError struct {
	Msg string
	Err error // underlying diagnostic, if any
}

func (e *InvalidShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spatial4n: invalid shape: %s: %v", e.Msg, e.Err)
	}
	return "spatial4n: invalid shape: " + e.Msg
}

func (e *InvalidShapeError) Unwrap() error { return e.Err }

func invalidShapef(format string, args ...interface{}) error {
	return &InvalidShapeError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError reports a shape-type combination with no relation
// implementation, or a binary codec type byte with no decoder.
type UnsupportedOperationError struct {
	Msg string
}

func (e *UnsupportedOperationError) Error() string {
	return "spatial4n: unsupported operation: " + e.Msg
}

func unsupportedf(format string, args ...interface{}) error {
	return &UnsupportedOperationError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports malformed WKT text, as distinct from text that parses but
// describes an invalid shape. Offset is the character position in the input.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("spatial4n: parse error at offset %d: %s", e.Offset, e.Msg)
}
