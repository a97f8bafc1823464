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

// Statement is implemented by all top-level statement nodes.
type Statement interface {
	NodeFormatter

	// StatementTag returns the fixed keyword of the statement, e.g.
	// "CREATE USER". The tag appears in logs and error messages; it
	// never contains user input.
	StatementTag() string
}

// AdminStatement marks the statements handled by the administration
// planner. The planner treats any statement carrying this marker that
// it fails to dispatch as an internal error rather than passing it on
// to another planning phase.
type AdminStatement interface {
	Statement

	// AdminCommand is a marker method.
	AdminCommand()
}

// IfExistsDo governs how a CREATE behaves when its target already
// exists.
type IfExistsDo int

const (
	// IfExistsThrowError is the default: creation is unconditional and
	// errors if the target exists.
	IfExistsThrowError IfExistsDo = iota
	// IfExistsDoNothing short-circuits the command at execution time
	// without raising an error (IF NOT EXISTS).
	IfExistsDoNothing
	// IfExistsReplace drops a pre-existing target before creating the
	// new one (OR REPLACE).
	IfExistsReplace
	// IfExistsInvalidSyntax marks the rejected combination of OR
	// REPLACE with IF NOT EXISTS. The parser preserves it so the error
	// can be reported during planning with full context.
	IfExistsInvalidSyntax
)

// RevokeType selects which prior privilege rows a REVOKE removes.
type RevokeType int

const (
	// RevokeGranted targets rows recorded by GRANT.
	RevokeGranted RevokeType = iota
	// RevokeDenied targets rows recorded by DENY.
	RevokeDenied
)

// String returns the keyword used in privilege commands.
func (t RevokeType) String() string {
	if t == RevokeDenied {
		return "DENY"
	}
	return "GRANT"
}

// Password is a credential supplied to a user-management command,
// either as an inline literal or as a reference to a bound query
// parameter. Exactly one of Value and Param is set.
type Password struct {
	Value string
	Param string
}

// NewPassword returns a literal password.
func NewPassword(value string) Password { return Password{Value: value} }

// NewPasswordParameter returns a late-bound password.
func NewPasswordParameter(name string) Password { return Password{Param: name} }

// IsParameter reports whether the password is late-bound.
func (p Password) IsParameter() bool { return p.Param != "" }

// Format implements the NodeFormatter interface. Unless FmtShowPasswords
// is set, literal values render as the fixed placeholder so that the
// canonical statement text never contains a credential.
func (p Password) Format(ctx *FmtCtx) {
	if p.IsParameter() {
		ctx.WriteByte('$')
		ctx.WriteString(p.Param)
		return
	}
	if ctx.HasFlags(FmtShowPasswords) {
		ctx.WriteByte('\'')
		ctx.WriteString(p.Value)
		ctx.WriteByte('\'')
		return
	}
	ctx.WriteString("'******'")
}
