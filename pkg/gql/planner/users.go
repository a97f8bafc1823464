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

// credential splits a password into the two plan-side representations:
// literal values are encoded to raw bytes at planning time, late-bound
// parameters stay symbolic and resolve at execution.
func credential(p ast.Password) (literal []byte, param string) {
	if p.IsParameter() {
		return nil, p.Param
	}
	return []byte(p.Value), ""
}

func planCreateUser(n *ast.CreateUser, meta *Metadata) (plan.Node, error) {
	name, err := meta.NormalizeAndValidateUsername(string(n.Name))
	if err != nil {
		return nil, err
	}
	pwBytes, pwParam := credential(n.Password)

	var source plan.Node
	switch n.IfExists {
	case ast.IfExistsReplace:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropUserAction, plan.CreateUserAction)
		source = plan.NewDropUser(meta.nextID(), assert, name)
	case ast.IfExistsDoNothing:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateUserAction)
		source = plan.NewDoNothingIfExists(meta.nextID(), assert, "User", name)
	case ast.IfExistsInvalidSyntax:
		return nil, gqlerror.Newf(gqlerror.CodeSyntax,
			"failed to create the specified user '%s': cannot have both OR REPLACE and IF NOT EXISTS", name)
	default:
		source = plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateUserAction)
	}

	create := plan.NewCreateUser(meta.nextID(), source, name,
		pwBytes, pwParam, n.RequirePasswordChange, n.Suspended)
	return logCommand(meta, create, n), nil
}

func planDropUser(n *ast.DropUser, meta *Metadata) (plan.Node, error) {
	name, err := meta.NormalizeAndValidateUsername(string(n.Name))
	if err != nil {
		return nil, err
	}
	if name == security.RootUser {
		return nil, gqlerror.Newf(gqlerror.CodeInvalidParameterValue,
			"user %s cannot be dropped", name)
	}

	var source plan.Node = plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropUserAction)
	if n.IfExists {
		source = plan.NewDoNothingIfNotExists(meta.nextID(), source, "User", name)
	}
	drop := plan.NewDropUser(meta.nextID(), source, name)
	return logCommand(meta, drop, n), nil
}

func planAlterUser(n *ast.AlterUser, meta *Metadata) (plan.Node, error) {
	name, err := meta.NormalizeAndValidateUsername(string(n.Name))
	if err != nil {
		return nil, err
	}
	var pwBytes []byte
	var pwParam string
	if n.Password != nil {
		pwBytes, pwParam = credential(*n.Password)
	}

	assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.AlterUserAction)
	alter := plan.NewAlterUser(meta.nextID(), assert, name,
		pwBytes, pwParam, n.RequirePasswordChange, n.Suspended)
	return logCommand(meta, alter, n), nil
}

func planSetOwnPassword(n *ast.SetOwnPassword, meta *Metadata) (plan.Node, error) {
	newBytes, newParam := credential(n.NewPassword)
	curBytes, curParam := credential(n.CurrentPassword)

	set := plan.NewSetOwnPassword(meta.nextID(), newBytes, newParam, curBytes, curParam)
	return logCommand(meta, set, n), nil
}
