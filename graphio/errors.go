// SPDX-License-Identifier: MIT
package graphio

import "github.com/pkg/errors"

var (
	// ErrSyntax is returned for malformed rows or notation.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat is returned by LoadFile for unrecognised extensions.
	ErrUnknownFormat = errors.New("graphio: unknown file format")
)
