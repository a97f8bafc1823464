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
	"strings"

	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
)

// ProcedureName is the dotted name of a procedure.
type ProcedureName struct {
	Namespace []string
	Name      string
}

func (p ProcedureName) String() string {
	if len(p.Namespace) == 0 {
		return p.Name
	}
	return strings.Join(p.Namespace, ".") + "." + p.Name
}

// Format implements the NodeFormatter interface.
func (p ProcedureName) Format(ctx *FmtCtx) { ctx.WriteString(p.String()) }

// AdminProcedureCall represents a bare CALL of an administrative
// procedure, with no surrounding clauses besides a trivial return. Pos
// locates the CALL keyword in the original query text for diagnostics.
type AdminProcedureCall struct {
	Procedure ProcedureName
	Args      []Expr
	Pos       gqlerror.Position
}

// Format implements the NodeFormatter interface.
func (node *AdminProcedureCall) Format(ctx *FmtCtx) {
	ctx.WriteString("CALL ")
	ctx.FormatNode(node.Procedure)
	ctx.WriteByte('(')
	for i, arg := range node.Args {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.FormatNode(arg)
	}
	ctx.WriteByte(')')
}

// StatementTag implements the Statement interface.
func (*AdminProcedureCall) StatementTag() string { return "CALL" }

// AdminCommand implements the AdminStatement interface.
func (*AdminProcedureCall) AdminCommand() {}
