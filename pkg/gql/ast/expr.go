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

// Expr is a scalar expression. Only the small fragment needed by filter
// plans and procedure arguments is modeled; full expression planning
// happens in the query planner proper.
type Expr interface {
	NodeFormatter
}

// Ands is a flattened top-level conjunction. An empty Ands is the
// always-true predicate.
type Ands struct {
	Exprs []Expr
}

// Format implements the NodeFormatter interface.
func (e *Ands) Format(ctx *FmtCtx) {
	for i, sub := range e.Exprs {
		if i > 0 {
			ctx.WriteString(" AND ")
		}
		ctx.FormatNode(sub)
	}
}

// Variable references a bound identifier.
type Variable struct {
	Name Name
}

// Format implements the NodeFormatter interface.
func (e *Variable) Format(ctx *FmtCtx) { ctx.FormatNode(e.Name) }

// StrVal is a string literal.
type StrVal struct {
	Value string
}

// Format implements the NodeFormatter interface.
func (e *StrVal) Format(ctx *FmtCtx) {
	ctx.WriteByte('\'')
	ctx.WriteString(e.Value)
	ctx.WriteByte('\'')
}

// Equals is an equality comparison.
type Equals struct {
	Left  Expr
	Right Expr
}

// Format implements the NodeFormatter interface.
func (e *Equals) Format(ctx *FmtCtx) {
	ctx.FormatNode(e.Left)
	ctx.WriteString(" = ")
	ctx.FormatNode(e.Right)
}
