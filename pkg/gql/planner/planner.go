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

// Package planner lowers parsed administrative statements into
// executable plan trees. Every mutating chain is rooted in an
// authorization assertion and wrapped in a LogSystemCommand carrying
// the canonical statement text for audit logging.
package planner

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/rs/zerolog"

	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/plan"
	"github.com/sylvadb/sylva/pkg/security"
)

// PlannerType tags a PlanState with the planning phase that produced
// it, so downstream stages do not re-optimize it as an ordinary query
// plan.
type PlannerType string

// PlannerAdministration is the tag carried by every plan this package
// produces.
const PlannerAdministration PlannerType = "administration"

// PlanState is the output of a successful administrative compilation.
type PlanState struct {
	Root    plan.Node
	Planner PlannerType
}

// DefaultMaxDatabases is the cluster-wide database count limit used
// when the caller does not configure one.
const DefaultMaxDatabases = 100

// Metadata is the ambient compilation context. One Metadata instance
// belongs to exactly one compilation; the identifier generator it owns
// is not safe to share across concurrent compilations.
type Metadata struct {
	// IDGen allocates plan node identifiers for this compilation.
	IDGen *plan.IDGen

	// Query is the original statement text, threaded into procedure
	// call plans and internal errors.
	Query string

	// Params are the query parameters bound for this compilation,
	// passed through untouched into nodes that need late-bound values.
	Params map[string]interface{}

	// Procedures resolves administrative procedure calls. Required for
	// planning CALL statements.
	Procedures ProcedureResolver

	// MaxDatabases is carried into the database-count invariant check
	// on CREATE DATABASE plans.
	MaxDatabases int

	// Name validation hooks, overridable in tests.
	NormalizeAndValidateUsername func(string) (string, error)
	ValidateRoleName             func(string) error
	ValidateDatabaseName         func(string) error
}

// NewMetadata returns a Metadata with a fresh identifier generator and
// the default validators.
func NewMetadata(query string, params map[string]interface{}) *Metadata {
	return &Metadata{
		IDGen:                        plan.NewIDGen(),
		Query:                        query,
		Params:                       params,
		MaxDatabases:                 DefaultMaxDatabases,
		NormalizeAndValidateUsername: security.NormalizeAndValidateUsername,
		ValidateRoleName:             security.ValidateRoleName,
		ValidateDatabaseName:         security.ValidateDatabaseName,
	}
}

func (m *Metadata) nextID() plan.ID { return m.IDGen.Next() }

// logCommand wraps a mutating plan in the audit node. The canonical
// rendering never contains literal credentials; see ast.Password.
func logCommand(meta *Metadata, source plan.Node, stmt ast.Statement) plan.Node {
	return plan.NewLogSystemCommand(meta.nextID(), source, ast.AsString(stmt))
}

// PlanAdministration compiles one administrative statement into a plan
// tree. It returns (nil, nil) for statements that are not
// administrative, so the caller can try other planning phases. A
// statement that carries the administrative marker but matches no case
// is a planner defect and fails with an assertion error naming the
// query text.
func PlanAdministration(ctx context.Context, stmt ast.Statement, meta *Metadata) (*PlanState, error) {
	ctx = logtags.AddTag(ctx, "planner", "admin")

	var root plan.Node
	var err error
	switch n := stmt.(type) {
	case *ast.CreateUser:
		root, err = planCreateUser(n, meta)
	case *ast.DropUser:
		root, err = planDropUser(n, meta)
	case *ast.AlterUser:
		root, err = planAlterUser(n, meta)
	case *ast.SetOwnPassword:
		root, err = planSetOwnPassword(n, meta)
	case *ast.CreateRole:
		root, err = planCreateRole(n, meta)
	case *ast.DropRole:
		root, err = planDropRole(n, meta)
	case *ast.GrantRolesToUsers:
		root, err = planGrantRoles(n, meta)
	case *ast.RevokeRolesFromUsers:
		root, err = planRevokeRoles(n, meta)
	case *ast.GrantPrivilege:
		root, err = planPrivilege(meta, &n.Privilege, n.Roles, verbGrant, ast.RevokeGranted, n)
	case *ast.DenyPrivilege:
		root, err = planPrivilege(meta, &n.Privilege, n.Roles, verbDeny, ast.RevokeGranted, n)
	case *ast.RevokePrivilege:
		root, err = planPrivilege(meta, &n.Privilege, n.Roles, verbRevoke, n.Revoke, n)
	case *ast.ShowUsers:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowUserAction)
		root = plan.NewShowUsers(meta.nextID(), assert)
	case *ast.ShowRoles:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowRoleAction)
		root = plan.NewShowRoles(meta.nextID(), assert, n.ShowAll, n.WithUsers)
	case *ast.ShowPrivileges:
		root = planShowPrivileges(n, meta)
	case *ast.ShowDatabases:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowDatabaseAction)
		root = plan.NewShowDatabases(meta.nextID(), assert)
	case *ast.ShowDefaultDatabase:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowDatabaseAction)
		root = plan.NewShowDefaultDatabase(meta.nextID(), assert)
	case *ast.ShowDatabase:
		assert := plan.NewAssertDbmsAdmin(meta.nextID(), plan.ShowDatabaseAction)
		root = plan.NewShowDatabase(meta.nextID(), assert, string(n.Name))
	case *ast.CreateDatabase:
		root, err = planCreateDatabase(n, meta)
	case *ast.DropDatabase:
		root, err = planDropDatabase(n, meta)
	case *ast.StartDatabase:
		root, err = planStartDatabase(n, meta)
	case *ast.StopDatabase:
		root, err = planStopDatabase(n, meta)
	case *ast.AdminProcedureCall:
		root, err = planProcedureCall(n, meta)
	default:
		if _, ok := stmt.(ast.AdminStatement); ok {
			return nil, errors.AssertionFailedf(
				"administrative command has no planner case: %s", unhandledText(stmt, meta))
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ev := zerolog.Ctx(ctx).Debug()
	if buf := logtags.FromContext(ctx); buf != nil {
		ev = ev.Str("tags", buf.String())
	}
	ev.Str("statement", stmt.StatementTag()).
		Int("operators", len(plan.Flatten(root))).
		Msg("planned administrative command")

	return &PlanState{Root: root, Planner: PlannerAdministration}, nil
}

func unhandledText(stmt ast.Statement, meta *Metadata) string {
	if meta.Query != "" {
		return meta.Query
	}
	return ast.AsString(stmt)
}
