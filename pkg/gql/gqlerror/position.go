// Copyright 2025 The Sylva Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package gqlerror

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Position locates a token in the original query text. Offset counts
// runes from the start of the text; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d (offset: %d)", p.Line, p.Column, p.Offset)
}

// Syntaxf creates a syntax-class error carrying the source position of
// the offending token.
func Syntaxf(pos Position, format string, args ...interface{}) error {
	return &withPosition{
		cause: &withCode{cause: errors.NewWithDepthf(1, format, args...), code: CodeSyntax},
		pos:   pos,
	}
}

// WrapSyntax wraps an underlying error (typically a semantic-check
// failure) into a positioned syntax-class error.
func WrapSyntax(err error, pos Position) error {
	if err == nil {
		return nil
	}
	return &withPosition{cause: WithCode(err, CodeSyntax), pos: pos}
}

// GetPosition retrieves the source position attached closest to the
// surface of the error chain.
func GetPosition(err error) (Position, bool) {
	for ; err != nil; err = errors.UnwrapOnce(err) {
		if w, ok := err.(*withPosition); ok {
			return w.pos, true
		}
	}
	return Position{}, false
}

type withPosition struct {
	cause error
	pos   Position
}

func (w *withPosition) Error() string { return w.cause.Error() }
func (w *withPosition) Cause() error  { return w.cause }
func (w *withPosition) Unwrap() error { return w.cause }

func (w *withPosition) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withPosition) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("position: %s", w.pos)
	}
	return w.cause
}
