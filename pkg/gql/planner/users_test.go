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

func TestPlanCreateUser(t *testing.T) {
	testCases := []struct {
		name string
		stmt *ast.CreateUser
		ops  []string
	}{
		{
			"plain",
			&ast.CreateUser{Name: "alice", Password: ast.NewPassword("x")},
			[]string{"AssertDbmsAdmin", "CreateUser", "LogSystemCommand"},
		},
		{
			"or replace",
			&ast.CreateUser{Name: "alice", Password: ast.NewPassword("x"), IfExists: ast.IfExistsReplace},
			[]string{"AssertDbmsAdmin", "DropUser", "CreateUser", "LogSystemCommand"},
		},
		{
			"if not exists",
			&ast.CreateUser{Name: "alice", Password: ast.NewPassword("x"), IfExists: ast.IfExistsDoNothing},
			[]string{"AssertDbmsAdmin", "DoNothingIfExists", "CreateUser", "LogSystemCommand"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := mustPlan(t, tc.stmt)
			require.Equal(t, tc.ops, execOps(root))
		})
	}
}

func TestPlanCreateUserReplaceAssertsBothActions(t *testing.T) {
	// Replacing is a drop plus a create, so the assertion up front must
	// cover both actions.
	root := mustPlan(t, &ast.CreateUser{
		Name: "alice", Password: ast.NewPassword("x"), IfExists: ast.IfExistsReplace,
	})
	flat := plan.Flatten(root)
	assert := flat[len(flat)-1].(*plan.AssertDbmsAdmin)
	require.Equal(t, []plan.AdminAction{plan.DropUserAction, plan.CreateUserAction}, assert.Actions)
}

func TestPlanCreateUserInvalidSyntaxCombination(t *testing.T) {
	_, err := PlanAdministration(context.Background(), &ast.CreateUser{
		Name: "alice", Password: ast.NewPassword("x"), IfExists: ast.IfExistsInvalidSyntax,
	}, NewMetadata("", nil))
	require.Error(t, err)
	require.Equal(t, gqlerror.CodeSyntax, gqlerror.GetCode(err))
	require.ErrorContains(t, err, "cannot have both OR REPLACE and IF NOT EXISTS")
}

func TestPlanCreateUserNormalizesName(t *testing.T) {
	root := mustPlan(t, &ast.CreateUser{Name: "Alice", Password: ast.NewPassword("x")})
	flat := plan.Flatten(root)
	create := flat[1].(*plan.CreateUser)
	require.Equal(t, "alice", create.Name)
}

func TestPlanCreateUserCredential(t *testing.T) {
	root := mustPlan(t, &ast.CreateUser{Name: "alice", Password: ast.NewPassword("hunter2")})
	create := plan.Flatten(root)[1].(*plan.CreateUser)
	require.Equal(t, []byte("hunter2"), create.PasswordBytes)
	require.Empty(t, create.PasswordParam)

	root = mustPlan(t, &ast.CreateUser{Name: "alice", Password: ast.NewPasswordParameter("pw")})
	create = plan.Flatten(root)[1].(*plan.CreateUser)
	require.Nil(t, create.PasswordBytes)
	require.Equal(t, "pw", create.PasswordParam)
}

func TestPlanCreateUserInvalidName(t *testing.T) {
	_, err := PlanAdministration(context.Background(), &ast.CreateUser{
		Name: "al ice", Password: ast.NewPassword("x"),
	}, NewMetadata("", nil))
	require.Error(t, err)
	require.Equal(t, gqlerror.CodeInvalidName, gqlerror.GetCode(err))
}

func TestPlanDropUser(t *testing.T) {
	root := mustPlan(t, &ast.DropUser{Name: "bob"})
	require.Equal(t, []string{"AssertDbmsAdmin", "DropUser", "LogSystemCommand"}, execOps(root))

	root = mustPlan(t, &ast.DropUser{Name: "bob", IfExists: true})
	require.Equal(t,
		[]string{"AssertDbmsAdmin", "DoNothingIfNotExists", "DropUser", "LogSystemCommand"},
		execOps(root))
	guard := plan.Flatten(root)[2].(*plan.DoNothingIfNotExists)
	require.Equal(t, "User", guard.Kind)
	require.Equal(t, "bob", guard.Name)
}

func TestPlanDropUserProtectsRoot(t *testing.T) {
	// The bootstrap user survives any spelling of its name.
	for _, name := range []ast.Name{"root", "Root", "ROOT"} {
		_, err := PlanAdministration(context.Background(), &ast.DropUser{Name: name}, NewMetadata("", nil))
		require.Error(t, err)
		require.Equal(t, gqlerror.CodeInvalidParameterValue, gqlerror.GetCode(err))
	}
}

func TestPlanAlterUser(t *testing.T) {
	suspended := true
	pw := ast.NewPasswordParameter("pw")
	root := mustPlan(t, &ast.AlterUser{Name: "Bob", Password: &pw, Suspended: &suspended})
	require.Equal(t, []string{"AssertDbmsAdmin", "AlterUser", "LogSystemCommand"}, execOps(root))

	alter := plan.Flatten(root)[1].(*plan.AlterUser)
	require.Equal(t, "bob", alter.Name)
	require.Equal(t, "pw", alter.PasswordParam)
	require.Nil(t, alter.RequirePasswordChange)
	require.NotNil(t, alter.Suspended)
	require.True(t, *alter.Suspended)
}

func TestPlanSetOwnPassword(t *testing.T) {
	// Either password may independently be a literal or a parameter.
	testCases := []struct {
		name                   string
		newPassword            ast.Password
		currentPassword        ast.Password
		newBytes, currentBytes []byte
		newParam, currentParam string
	}{
		{
			name:            "literal to literal",
			newPassword:     ast.NewPassword("new"),
			currentPassword: ast.NewPassword("old"),
			newBytes:        []byte("new"),
			currentBytes:    []byte("old"),
		},
		{
			name:            "literal to parameter",
			newPassword:     ast.NewPasswordParameter("new"),
			currentPassword: ast.NewPassword("old"),
			newParam:        "new",
			currentBytes:    []byte("old"),
		},
		{
			name:            "parameter to literal",
			newPassword:     ast.NewPassword("new"),
			currentPassword: ast.NewPasswordParameter("old"),
			newBytes:        []byte("new"),
			currentParam:    "old",
		},
		{
			name:            "parameter to parameter",
			newPassword:     ast.NewPasswordParameter("new"),
			currentPassword: ast.NewPasswordParameter("old"),
			newParam:        "new",
			currentParam:    "old",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Changing one's own password needs no administrative
			// assertion but is still audited.
			root := mustPlan(t, &ast.SetOwnPassword{
				NewPassword:     tc.newPassword,
				CurrentPassword: tc.currentPassword,
			})
			require.Equal(t, []string{"SetOwnPassword", "LogSystemCommand"}, execOps(root))

			set := plan.Flatten(root)[1].(*plan.SetOwnPassword)
			require.Equal(t, tc.newBytes, set.NewPasswordBytes)
			require.Equal(t, tc.newParam, set.NewPasswordParam)
			require.Equal(t, tc.currentBytes, set.CurrentPasswordBytes)
			require.Equal(t, tc.currentParam, set.CurrentPasswordParam)
		})
	}
}
