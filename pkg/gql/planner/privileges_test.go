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

func TestPlanGrantAccess(t *testing.T) {
	root := mustPlan(t, &ast.GrantPrivilege{
		Privilege: ast.Privilege{Kind: ast.PrivilegeAccess, Scope: ast.GraphScope{Database: "sales"}},
		Roles:     ast.NameList{"r1", "r2"},
	})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "GrantAccess", "GrantAccess", "LogSystemCommand",
	}, execOps(root))

	flat := plan.Flatten(root)
	assert := flat[len(flat)-1].(*plan.AssertDbmsAdmin)
	require.Equal(t, []plan.AdminAction{plan.GrantPrivilegeAction}, assert.Actions)

	first := flat[2].(*plan.GrantAccess)
	second := flat[1].(*plan.GrantAccess)
	require.Equal(t, "r1", first.Role)
	require.Equal(t, "r2", second.Role)
	require.Equal(t, "sales", first.Database)
}

func TestPlanTraverseExpansion(t *testing.T) {
	// Two roles times two labels gives four operators; roles enumerate
	// outermost, segments fastest.
	root := mustPlan(t, &ast.DenyPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeTraverse,
			Scope:     ast.GraphScope{All: true},
			Qualifier: ast.LabelsQualifier{Labels: ast.NameList{"A", "B"}},
		},
		Roles: ast.NameList{"r1", "r2"},
	})

	flat := plan.Flatten(root)
	require.Len(t, flat, 6)
	assert := flat[len(flat)-1].(*plan.AssertDbmsAdmin)
	require.Equal(t, []plan.AdminAction{plan.DenyPrivilegeAction}, assert.Actions)

	type entry struct{ role, segment string }
	var got []entry
	for i := len(flat) - 2; i >= 1; i-- {
		d := flat[i].(*plan.DenyTraverse)
		require.Equal(t, "*", d.Graph)
		got = append(got, entry{d.Role, ast.AsString(d.Qualifier)})
	}
	require.Equal(t, []entry{
		{"r1", "NODES A"}, {"r1", "NODES B"},
		{"r2", "NODES A"}, {"r2", "NODES B"},
	}, got)
}

func TestPlanWriteExpansion(t *testing.T) {
	root := mustPlan(t, &ast.GrantPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeWrite,
			Scope:     ast.GraphScope{Database: "sales"},
			Qualifier: ast.AllQualifier{},
		},
		Roles: ast.NameList{"writer"},
	})
	require.Equal(t, []string{"AssertDbmsAdmin", "GrantWrite", "LogSystemCommand"}, execOps(root))

	w := plan.Flatten(root)[1].(*plan.GrantWrite)
	require.Equal(t, "sales", w.Graph)
	// Write always covers all properties.
	require.True(t, w.Resource.IsAllProperties())
}

func TestPlanReadExpansion(t *testing.T) {
	// One role, two labels, two properties: four read operators with
	// the resource varying fastest.
	root := mustPlan(t, &ast.GrantPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeRead,
			Resource:  ast.PropertiesResource{Properties: ast.NameList{"p1", "p2"}},
			Scope:     ast.GraphScope{All: true},
			Qualifier: ast.LabelsQualifier{Labels: ast.NameList{"A", "B"}},
		},
		Roles: ast.NameList{"analyst"},
	})

	flat := plan.Flatten(root)
	require.Len(t, flat, 6)

	type entry struct{ segment, resource string }
	var got []entry
	for i := len(flat) - 2; i >= 1; i-- {
		r := flat[i].(*plan.GrantRead)
		require.Equal(t, "analyst", r.Role)
		got = append(got, entry{ast.AsString(r.Qualifier), ast.AsString(r.Resource)})
	}
	require.Equal(t, []entry{
		{"NODES A", "{p1}"}, {"NODES A", "{p2}"},
		{"NODES B", "{p1}"}, {"NODES B", "{p2}"},
	}, got)
}

func TestPlanGrantMatch(t *testing.T) {
	// MATCH expands into a traverse half followed by a read half; the
	// traverse operators execute first.
	root := mustPlan(t, &ast.GrantPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeMatch,
			Resource:  ast.PropertiesResource{Properties: ast.NameList{"p1", "p2"}},
			Scope:     ast.GraphScope{All: true},
			Qualifier: ast.LabelsQualifier{Labels: ast.NameList{"A", "B"}},
		},
		Roles: ast.NameList{"custom"},
	})
	require.Equal(t, []string{
		"AssertDbmsAdmin",
		"GrantTraverse", "GrantTraverse",
		"GrantRead", "GrantRead", "GrantRead", "GrantRead",
		"LogSystemCommand",
	}, execOps(root))
}

func TestPlanDenyMatchAsymmetry(t *testing.T) {
	// Denying MATCH on specific properties must not deny traversal:
	// the rows stay reachable, only the properties go dark.
	root := mustPlan(t, &ast.DenyPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeMatch,
			Resource:  ast.PropertyResource{Property: "ssn"},
			Scope:     ast.GraphScope{All: true},
			Qualifier: ast.LabelAllQualifier{},
		},
		Roles: ast.NameList{"custom"},
	})
	require.Equal(t, []string{"AssertDbmsAdmin", "DenyRead", "LogSystemCommand"}, execOps(root))

	// Denying MATCH on all properties denies traversal too.
	root = mustPlan(t, &ast.DenyPrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeMatch,
			Resource:  ast.AllPropertiesResource{},
			Scope:     ast.GraphScope{All: true},
			Qualifier: ast.LabelAllQualifier{},
		},
		Roles: ast.NameList{"custom"},
	})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "DenyTraverse", "DenyRead", "LogSystemCommand",
	}, execOps(root))
}

func TestPlanRevokeMatch(t *testing.T) {
	// REVOKE MATCH always removes both halves, whichever grant type is
	// targeted.
	root := mustPlan(t, &ast.RevokePrivilege{
		Privilege: ast.Privilege{
			Kind:      ast.PrivilegeMatch,
			Resource:  ast.PropertyResource{Property: "name"},
			Scope:     ast.GraphScope{Database: "sales"},
			Qualifier: ast.RelationshipAllQualifier{},
		},
		Roles:  ast.NameList{"custom"},
		Revoke: ast.RevokeDenied,
	})
	require.Equal(t, []string{
		"AssertDbmsAdmin", "RevokeTraverse", "RevokeRead", "LogSystemCommand",
	}, execOps(root))

	flat := plan.Flatten(root)
	traverse := flat[2].(*plan.RevokeTraverse)
	read := flat[1].(*plan.RevokeRead)
	require.Equal(t, ast.RevokeDenied, traverse.Revoke)
	require.Equal(t, ast.RevokeDenied, read.Revoke)

	assert := flat[len(flat)-1].(*plan.AssertDbmsAdmin)
	require.Equal(t, []plan.AdminAction{plan.RevokePrivilegeAction}, assert.Actions)
}

func TestPlanRevokeAccessCarriesType(t *testing.T) {
	root := mustPlan(t, &ast.RevokePrivilege{
		Privilege: ast.Privilege{Kind: ast.PrivilegeAccess, Scope: ast.GraphScope{All: true}},
		Roles:     ast.NameList{"custom"},
		Revoke:    ast.RevokeGranted,
	})
	revoke := plan.Flatten(root)[1].(*plan.RevokeAccess)
	require.Equal(t, ast.RevokeGranted, revoke.Revoke)
	require.Equal(t, "*", revoke.Database)
}

func TestPlanPrivilegeValidatesRoles(t *testing.T) {
	_, err := PlanAdministration(context.Background(), &ast.GrantPrivilege{
		Privilege: ast.Privilege{Kind: ast.PrivilegeAccess, Scope: ast.GraphScope{All: true}},
		Roles:     ast.NameList{"good", "Bad Role"},
	}, NewMetadata("", nil))
	require.Error(t, err)
	require.Equal(t, gqlerror.CodeInvalidName, gqlerror.GetCode(err))
}
