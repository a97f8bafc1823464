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
	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/gqlerror"
	"github.com/sylvadb/sylva/pkg/gql/plan"
	"github.com/sylvadb/sylva/pkg/security"
)

func planCreateRole(n *ast.CreateRole, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)
	if err := meta.ValidateRoleName(name); err != nil {
		return nil, err
	}

	var source plan.Node
	switch n.IfExists {
	case ast.IfExistsReplace:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropRoleAction, plan.CreateRoleAction)
		source = plan.NewDropRole(meta.nextID(), assert, name)
	case ast.IfExistsDoNothing:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateRoleAction)
		source = plan.NewDoNothingIfExists(meta.nextID(), assert, "Role", name)
	case ast.IfExistsInvalidSyntax:
		return nil, gqlerror.Newf(gqlerror.CodeSyntax,
			"failed to create the specified role '%s': cannot have both OR REPLACE and IF NOT EXISTS", name)
	default:
		source = plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateRoleAction)
	}

	if n.From != nil {
		source = plan.NewEnsureNodeExists(meta.nextID(), source, "Role", string(*n.From))
	}
	var root plan.Node = plan.NewCreateRole(meta.nextID(), source, name)
	if n.From != nil {
		// DENIED rows are copied after GRANTED rows so a deny recorded
		// on the source role is not overridden by the grant-copy pass.
		root = plan.NewCopyRolePrivileges(meta.nextID(), root, name, string(*n.From), "GRANTED")
		root = plan.NewCopyRolePrivileges(meta.nextID(), root, name, string(*n.From), "DENIED")
	}
	return logCommand(meta, root, n), nil
}

func planDropRole(n *ast.DropRole, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)
	if name == security.AdminRole {
		return nil, gqlerror.Newf(gqlerror.CodeInvalidParameterValue,
			"role %s cannot be dropped", name)
	}

	var source plan.Node = plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropRoleAction)
	if n.IfExists {
		source = plan.NewDoNothingIfNotExists(meta.nextID(), source, "Role", name)
	}
	drop := plan.NewDropRole(meta.nextID(), source, name)
	return logCommand(meta, drop, n), nil
}

// validateGrantees checks every name in a bulk role association before
// any plan node is built, so a single malformed name aborts the whole
// command instead of skipping an element mid-fold.
func validateGrantees(meta *Metadata, roles, users ast.NameList) ([]string, []string, error) {
	roleNames := make([]string, len(roles))
	for i, r := range roles {
		if err := meta.ValidateRoleName(string(r)); err != nil {
			return nil, nil, err
		}
		roleNames[i] = string(r)
	}
	userNames := make([]string, len(users))
	for i, u := range users {
		name, err := meta.NormalizeAndValidateUsername(string(u))
		if err != nil {
			return nil, nil, err
		}
		userNames[i] = name
	}
	return roleNames, userNames, nil
}

func planGrantRoles(n *ast.GrantRolesToUsers, meta *Metadata) (plan.Node, error) {
	roles, users, err := validateGrantees(meta, n.Roles, n.Users)
	if err != nil {
		return nil, err
	}

	var node plan.Node = plan.NewAssertDbmsAdmin(meta.nextID(), plan.GrantRoleAction)
	for _, user := range users {
		for _, role := range roles {
			node = plan.NewGrantRoleToUser(meta.nextID(), node, role, user)
		}
	}
	return logCommand(meta, node, n), nil
}

func planRevokeRoles(n *ast.RevokeRolesFromUsers, meta *Metadata) (plan.Node, error) {
	roles, users, err := validateGrantees(meta, n.Roles, n.Users)
	if err != nil {
		return nil, err
	}

	var node plan.Node = plan.NewAssertDbmsAdmin(meta.nextID(), plan.RevokeRoleAction)
	for _, user := range users {
		for _, role := range roles {
			node = plan.NewRevokeRoleFromUser(meta.nextID(), node, role, user)
		}
	}
	return logCommand(meta, node, n), nil
}
