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

// Newf creates an error annotated with a code.
func Newf(code Code, format string, args ...interface{}) error {
	return &withCode{cause: errors.NewWithDepthf(1, format, args...), code: code}
}

// New creates an error annotated with a code.
func New(code Code, msg string) error {
	return &withCode{cause: errors.NewWithDepthf(1, "%s", msg), code: code}
}

// Wrapf wraps an error, adding a message prefix and a candidate code.
// The code closest to the surface of the chain wins during extraction.
func Wrapf(err error, code Code, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withCode{cause: errors.WrapWithDepthf(1, err, format, args...), code: code}
}

// WithCode annotates an existing error with a code without changing its
// message.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &withCode{cause: err, code: code}
}

// GetCode returns the code attached closest to the surface of the error
// chain, or CodeUndefined when the chain carries none.
func GetCode(err error) Code {
	for ; err != nil; err = errors.UnwrapOnce(err) {
		if w, ok := err.(*withCode); ok {
			return w.code
		}
	}
	return CodeUndefined
}

// HasCode returns true if any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	for ; err != nil; err = errors.UnwrapOnce(err) {
		if w, ok := err.(*withCode); ok && w.code == code {
			return true
		}
	}
	return false
}

type withCode struct {
	cause error
	code  Code
}

func (w *withCode) Error() string { return w.cause.Error() }
func (w *withCode) Cause() error  { return w.cause }
func (w *withCode) Unwrap() error { return w.cause }

func (w *withCode) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withCode) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("code: %s", string(w.code))
	}
	return w.cause
}
