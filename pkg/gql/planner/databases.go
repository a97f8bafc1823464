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
)

func planCreateDatabase(n *ast.CreateDatabase, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)
	// Database names are checked during planning, not execution; the
	// reason surfaces immediately as an invalid-argument error.
	if err := meta.ValidateDatabaseName(name); err != nil {
		return nil, gqlerror.Wrapf(err, gqlerror.CodeInvalidParameterValue,
			"failed to create the specified database %q", name)
	}

	var source plan.Node
	switch n.IfExists {
	case ast.IfExistsReplace:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropDatabaseAction, plan.CreateDatabaseAction)
		source = plan.NewDropDatabase(meta.nextID(), assert, name)
	case ast.IfExistsDoNothing:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateDatabaseAction)
		source = plan.NewDoNothingIfExists(meta.nextID(), assert, "Database", name)
	case ast.IfExistsInvalidSyntax:
		return nil, gqlerror.Newf(gqlerror.CodeSyntax,
			"failed to create the specified database %q: cannot have both OR REPLACE and IF NOT EXISTS", name)
	default:
		source = plan.NewAssertDbmsAdmin(meta.nextID(), plan.CreateDatabaseAction)
	}

	create := plan.NewCreateDatabase(meta.nextID(), source, name)
	ensure := plan.NewEnsureValidNumberOfDatabases(meta.nextID(), create, meta.MaxDatabases)
	return logCommand(meta, ensure, n), nil
}

func planDropDatabase(n *ast.DropDatabase, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)

	assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.DropDatabaseAction)
	var source plan.Node = plan.NewEnsureValidNonSystemDatabase(meta.nextID(), assert, name, "drop")
	if n.IfExists {
		source = plan.NewDoNothingIfNotExists(meta.nextID(), source, "Database", name)
	}
	drop := plan.NewDropDatabase(meta.nextID(), source, name)
	return logCommand(meta, drop, n), nil
}

func planStartDatabase(n *ast.StartDatabase, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)

	// Starting and stopping can be delegated per-database, so the
	// assertion is database-scoped rather than instance-wide.
	assert := plan.NewAssertDatabaseAdmin(meta.nextID(), plan.StartDatabaseAction, name)
	start := plan.NewStartDatabase(meta.nextID(), assert, name)
	return logCommand(meta, start, n), nil
}

func planStopDatabase(n *ast.StopDatabase, meta *Metadata) (plan.Node, error) {
	name := string(n.Name)

	assert := plan.NewAssertDatabaseAdmin(meta.nextID(), plan.StopDatabaseAction, name)
	ensure := plan.NewEnsureValidNonSystemDatabase(meta.nextID(), assert, name, "stop")
	stop := plan.NewStopDatabase(meta.nextID(), ensure, name)
	return logCommand(meta, stop, n), nil
}

func planShowPrivileges(n *ast.ShowPrivileges, meta *Metadata) plan.Node {
	var scope string
	switch n.Scope {
	case ast.ShowRolePrivileges:
		scope = "ROLE " + ast.AsString(&n.Names)
	case ast.ShowUserPrivileges:
		scope = "USER " + ast.AsString(&n.Names)
	default:
		scope = "ALL"
	}
	assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowPrivilegeAction)
	return plan.NewShowPrivileges(meta.nextID(), assert, scope)
}
