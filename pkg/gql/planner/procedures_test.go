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
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

type fakeResolver struct {
	err error
}

func (r fakeResolver) ResolveAdminProcedure(name ast.ProcedureName, args []ast.Expr) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return name.String(), nil
}

func TestPlanProcedureCall(t *testing.T) {
	params := map[string]interface{}{"user": "alice"}
	meta := NewMetadata("CALL dbms.security.listUsers()", params)
	meta.Procedures = fakeResolver{}

	stmt := &ast.AdminProcedureCall{
		Procedure: ast.ProcedureName{Namespace: []string{"dbms", "security"}, Name: "listUsers"},
	}
	state, err := PlanAdministration(context.Background(), stmt, meta)
	require.NoError(t, err)

	// Procedure calls are handed off whole; no audit wrapper.
	call, ok := state.Root.(*plan.SystemProcedureCall)
	require.True(t, ok, "expected SystemProcedureCall root, got %s", state.Root.Op())
	require.Equal(t, "dbms.security.listUsers", call.Procedure)
	require.Equal(t, "CALL dbms.security.listUsers()", call.Query)
	require.Equal(t, params, call.Params)
	require.Nil(t, call.Source())
}

func TestPlanProcedureCallResolutionFailure(t *testing.T) {
	meta := NewMetadata("CALL dbms.nope()", nil)
	meta.Procedures = fakeResolver{err: errors.New("no such procedure")}

	pos := gqlerror.Position{Offset: 0, Line: 1, Column: 1}
	stmt := &ast.AdminProcedureCall{
		Procedure: ast.ProcedureName{Namespace: []string{"dbms"}, Name: "nope"},
		Pos:       pos,
	}
	_, err := PlanAdministration(context.Background(), stmt, meta)
	require.Error(t, err)
	require.ErrorContains(t, err, "no such procedure")
	require.True(t, gqlerror.HasCode(err, gqlerror.CodeSyntax))

	got, ok := gqlerror.GetPosition(err)
	require.True(t, ok)
	require.Equal(t, pos, got)
}

func TestPlanProcedureCallWithoutResolver(t *testing.T) {
	stmt := &ast.AdminProcedureCall{
		Procedure: ast.ProcedureName{Namespace: []string{"dbms"}, Name: "nope"},
	}
	_, err := PlanAdministration(context.Background(), stmt, NewMetadata("", nil))
	require.Error(t, err)
	require.True(t, errors.HasAssertionFailure(err))
}
