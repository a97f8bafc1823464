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

package planner

import (
	"github.com/cockroachdb/errors"

	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

// ProcedureResolver checks an administrative procedure call against the
// procedure catalog. ResolveAdminProcedure returns the fully qualified
// procedure name on success, or an error when the procedure does not
// exist, is not callable in the administrative context, or the argument
// list does not match its signature.
type ProcedureResolver interface {
	ResolveAdminProcedure(name ast.ProcedureName, args []ast.Expr) (string, error)
}

func planProcedureCall(n *ast.AdminProcedureCall, meta *Metadata) (plan.Node, error) {
	if meta.Procedures == nil {
		return nil, errors.AssertionFailedf(
			"no procedure resolver configured, cannot plan call to %s", n.Procedure)
	}
	qualified, err := meta.Procedures.ResolveAdminProcedure(n.Procedure, n.Args)
	if err != nil {
		return nil, gqlerror.WrapSyntax(err, n.Pos)
	}
	// Procedure execution performs its own authorization and auditing,
	// so the call is not wrapped in LogSystemCommand here.
	return plan.NewSystemProcedureCall(meta.nextID(), qualified, meta.Query, meta.Params), nil
}
