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

	"github.com/stretchr/testify/require"

	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

func TestPlanCreateDatabase(t *testing.T) {
	root := mustPlan(t, &ast.CreateDatabase{Name: "sales"})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "CreateDatabase", "EnsureValidNumberOfDatabases", "LogSystemCommand",
	}, execOps(root))

	ensure := plan.Flatten(root)[1].(*plan.EnsureValidNumberOfDatabases)
	require.Equal(t, DefaultMaxDatabases, ensure.Max)
}

func TestPlanCreateDatabaseMaxFromMetadata(t *testing.T) {
	meta := NewMetadata("", nil)
	meta.MaxDatabases = 7
	state, err := PlanAdministration(context.Background(), &ast.CreateDatabase{Name: "sales"}, meta)
	require.NoError(t, err)
	ensure := plan.Flatten(state.Root)[1].(*plan.EnsureValidNumberOfDatabases)
	require.Equal(t, 7, ensure.Max)
}

func TestPlanCreateDatabaseDispositions(t *testing.T) {
	root := mustPlan(t, &ast.CreateDatabase{Name: "sales", IfExists: ast.IfExistsReplace})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "DropDatabase", "CreateDatabase",
		"EnsureValidNumberOfDatabases", "LogSystemCommand",
	}, execOps(root))

	flat := plan.Flatten(root)
	assert := flat[len(flat)-1].(*plan.AssertDbmsAdmin)
	require.Equal(t,
		[]plan.AdminAction{plan.DropDatabaseAction, plan.CreateDatabaseAction},
		assert.Actions)

	root = mustPlan(t, &ast.CreateDatabase{Name: "sales", IfExists: ast.IfExistsDoNothing})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "DoNothingIfExists", "CreateDatabase",
		"EnsureValidNumberOfDatabases", "LogSystemCommand",
	}, execOps(root))

	_, err := PlanAdministration(context.Background(),
		&ast.CreateDatabase{Name: "sales", IfExists: ast.IfExistsInvalidSyntax}, NewMetadata("", nil))
	require.Error(t, err)
	require.Equal(t, gqlerror.CodeSyntax, gqlerror.GetCode(err))
}

func TestPlanCreateDatabaseBadName(t *testing.T) {
	for _, name := range []ast.Name{"db", "Sales", "systemfoo", "9sales"} {
		_, err := PlanAdministration(context.Background(),
			&ast.CreateDatabase{Name: name}, NewMetadata("", nil))
		require.Error(t, err, "name %q", name)
		require.Equal(t, gqlerror.CodeInvalidParameterValue, gqlerror.GetCode(err))
		require.ErrorContains(t, err, "failed to create the specified database")
	}
}

func TestPlanDropDatabase(t *testing.T) {
	root := mustPlan(t, &ast.DropDatabase{Name: "sales"})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "EnsureValidNonSystemDatabase", "DropDatabase", "LogSystemCommand",
	}, execOps(root))

	guard := plan.Flatten(root)[2].(*plan.EnsureValidNonSystemDatabase)
	require.Equal(t, "sales", guard.Database)
	require.Equal(t, "drop", guard.Operation)

	root = mustPlan(t, &ast.DropDatabase{Name: "sales", IfExists: true})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "EnsureValidNonSystemDatabase", "DoNothingIfNotExists",
		"DropDatabase", "LogSystemCommand",
	}, execOps(root))
}

func TestPlanStartDatabase(t *testing.T) {
	root := mustPlan(t, &ast.StartDatabase{Name: "sales"})
	require.Equal(t, []string{
		"AssertDatabaseAdmin", "StartDatabase", "LogSystemCommand",
	}, execOps(root))

	flat := plan.Flatten(root)
	assert := flat[len(flat)-1].(*plan.AssertDatabaseAdmin)
	require.Equal(t, plan.StartDatabaseAction, assert.Action)
	require.Equal(t, "sales", assert.Database)
}

func TestPlanStopDatabase(t *testing.T) {
	root := mustPlan(t, &ast.StopDatabase{Name: "sales"})
	require.Equal(t, []string{
		"AssertDatabaseAdmin", "EnsureValidNonSystemDatabase", "StopDatabase", "LogSystemCommand",
	}, execOps(root))

	guard := plan.Flatten(root)[2].(*plan.EnsureValidNonSystemDatabase)
	require.Equal(t, "stop", guard.Operation)
}

func TestPlanShowPrivilegesScope(t *testing.T) {
	testCases := []struct {
		stmt  *ast.ShowPrivileges
		scope string
	}{
		{&ast.ShowPrivileges{}, "ALL"},
		{&ast.ShowPrivileges{Scope: ast.ShowRolePrivileges, Names: ast.NameList{"reader", "editor"}}, "ROLE reader, editor"},
		{&ast.ShowPrivileges{Scope: ast.ShowUserPrivileges, Names: ast.NameList{"alice"}}, "USER alice"},
	}
	for _, tc := range testCases {
		root := mustPlan(t, tc.stmt)
		show := root.(*plan.ShowPrivileges)
		require.Equal(t, tc.scope, show.Scope)
	}
}
