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

package ast

import (
	"bytes"
	"regexp"
)

// FmtFlags carry options for the rendering of statements into strings.
type FmtFlags int

const (
	// FmtSimple instructs the pretty-printer to produce the canonical
	// rendering of a statement: passwords are replaced with a
	// placeholder or the parameter reference that supplied them. This
	// is the rendering recorded for audit logging.
	FmtSimple FmtFlags = 0

	// FmtShowPasswords renders literal credentials verbatim. Never use
	// this for any string that may be logged or persisted.
	FmtShowPasswords FmtFlags = 1 << iota
)

// FmtCtx accumulates the rendering of a statement fragment. It embeds a
// buffer so that Format methods can write to it directly.
type FmtCtx struct {
	bytes.Buffer
	flags FmtFlags
}

// NewFmtCtx creates a FmtCtx with the given formatting flags.
func NewFmtCtx(flags FmtFlags) *FmtCtx {
	return &FmtCtx{flags: flags}
}

// HasFlags returns true if the given flags are all set.
func (ctx *FmtCtx) HasFlags(f FmtFlags) bool {
	return ctx.flags&f == f
}

// FormatNode renders the node into the context's buffer.
func (ctx *FmtCtx) FormatNode(n NodeFormatter) {
	n.Format(ctx)
}

// CloseAndGetString returns the accumulated rendering.
func (ctx *FmtCtx) CloseAndGetString() string {
	return ctx.String()
}

// NodeFormatter is implemented by all AST nodes that know how to render
// themselves.
type NodeFormatter interface {
	Format(ctx *FmtCtx)
}

// AsString renders the node using the canonical (password-redacting)
// flags.
func AsString(n NodeFormatter) string {
	ctx := NewFmtCtx(FmtSimple)
	ctx.FormatNode(n)
	return ctx.CloseAndGetString()
}

// AsStringWithFlags renders the node with the given flags.
func AsStringWithFlags(n NodeFormatter, flags FmtFlags) string {
	ctx := NewFmtCtx(flags)
	ctx.FormatNode(n)
	return ctx.CloseAndGetString()
}

// Name is an identifier: a user, role, database, label or property
// name.
type Name string

var bareIdentifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Format implements the NodeFormatter interface. Names that are not
// bare identifiers are escaped with backticks.
func (n Name) Format(ctx *FmtCtx) {
	s := string(n)
	if bareIdentifierRE.MatchString(s) {
		ctx.WriteString(s)
		return
	}
	ctx.WriteByte('`')
	for _, r := range s {
		if r == '`' {
			ctx.WriteString("``")
			continue
		}
		ctx.WriteRune(r)
	}
	ctx.WriteByte('`')
}

// NameList is a comma-separated list of names.
type NameList []Name

// Format implements the NodeFormatter interface.
func (l *NameList) Format(ctx *FmtCtx) {
	for i, n := range *l {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.FormatNode(n)
	}
}

// ToStrings converts the list to plain strings.
func (l NameList) ToStrings() []string {
	out := make([]string, len(l))
	for i, n := range l {
		out[i] = string(n)
	}
	return out
}
