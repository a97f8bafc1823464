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
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

type privilegeVerb int

const (
	verbGrant privilegeVerb = iota
	verbDeny
	verbRevoke
)

func (v privilegeVerb) assertAction() plan.AdminAction {
	switch v {
	case verbDeny:
		return plan.DenyPrivilegeAction
	case verbRevoke:
		return plan.RevokePrivilegeAction
	default:
		return plan.GrantPrivilegeAction
	}
}

// planPrivilege expands a privilege command over its combination set
// and folds the product into a chain rooted in an instance-wide
// assertion. The enumeration order is fixed: roles outermost, then
// segments, then resources; plans are reproducible across compilations
// of the same statement.
func planPrivilege(
	meta *Metadata, priv *ast.Privilege, roles ast.NameList,
	verb privilegeVerb, revoke ast.RevokeType, stmt ast.Statement,
) (plan.Node, error) {
	// Validate every role before building any node; a malformed name
	// aborts the whole command.
	roleNames := make([]string, len(roles))
	for i, r := range roles {
		if err := meta.ValidateRoleName(string(r)); err != nil {
			return nil, err
		}
		roleNames[i] = string(r)
	}

	graph := priv.Scope.TargetName()
	var segments []ast.Qualifier
	if priv.Qualifier != nil {
		segments = priv.Qualifier.Simplify()
	}

	node := plan.Node(plan.NewAssertDbmsAdmin(meta.nextID(), verb.assertAction()))

	switch priv.Kind {
	case ast.PrivilegeAccess:
		for _, role := range roleNames {
			switch verb {
			case verbGrant:
				node = plan.NewGrantAccess(meta.nextID(), node, graph, role)
			case verbDeny:
				node = plan.NewDenyAccess(meta.nextID(), node, graph, role)
			case verbRevoke:
				node = plan.NewRevokeAccess(meta.nextID(), node, graph, role, revoke)
			}
		}

	case ast.PrivilegeTraverse:
		for _, role := range roleNames {
			for _, seg := range segments {
				switch verb {
				case verbGrant:
					node = plan.NewGrantTraverse(meta.nextID(), node, graph, seg, role)
				case verbDeny:
					node = plan.NewDenyTraverse(meta.nextID(), node, graph, seg, role)
				case verbRevoke:
					node = plan.NewRevokeTraverse(meta.nextID(), node, graph, seg, role, revoke)
				}
			}
		}

	case ast.PrivilegeWrite:
		for _, role := range roleNames {
			for _, seg := range segments {
				switch verb {
				case verbGrant:
					node = plan.NewGrantWrite(meta.nextID(), node, graph, seg, role)
				case verbDeny:
					node = plan.NewDenyWrite(meta.nextID(), node, graph, seg, role)
				case verbRevoke:
					node = plan.NewRevokeWrite(meta.nextID(), node, graph, seg, role, revoke)
				}
			}
		}

	case ast.PrivilegeRead:
		resources := priv.Resource.Simplify()
		for _, role := range roleNames {
			for _, seg := range segments {
				for _, res := range resources {
					switch verb {
					case verbGrant:
						node = plan.NewGrantRead(meta.nextID(), node, graph, seg, res, role)
					case verbDeny:
						node = plan.NewDenyRead(meta.nextID(), node, graph, seg, res, role)
					case verbRevoke:
						node = plan.NewRevokeRead(meta.nextID(), node, graph, seg, res, role, revoke)
					}
				}
			}
		}

	case ast.PrivilegeMatch:
		// MATCH implies traversal, so the traverse half is chained
		// first and executes before the read half. DENY only covers
		// traversal when the resource is exactly all properties:
		// denying match on a subset of properties denies read alone.
		synthesizeTraverse := verb != verbDeny || priv.Resource.IsAllProperties()
		if synthesizeTraverse {
			for _, role := range roleNames {
				for _, seg := range segments {
					switch verb {
					case verbGrant:
						node = plan.NewGrantTraverse(meta.nextID(), node, graph, seg, role)
					case verbDeny:
						node = plan.NewDenyTraverse(meta.nextID(), node, graph, seg, role)
					case verbRevoke:
						node = plan.NewRevokeTraverse(meta.nextID(), node, graph, seg, role, revoke)
					}
				}
			}
		}
		resources := priv.Resource.Simplify()
		for _, role := range roleNames {
			for _, seg := range segments {
				for _, res := range resources {
					switch verb {
					case verbGrant:
						node = plan.NewGrantRead(meta.nextID(), node, graph, seg, res, role)
					case verbDeny:
						node = plan.NewDenyRead(meta.nextID(), node, graph, seg, res, role)
					case verbRevoke:
						node = plan.NewRevokeRead(meta.nextID(), node, graph, seg, res, role, revoke)
					}
				}
			}
		}

	default:
		return nil, errors.AssertionFailedf(
			"privilege command has no planner case: %s", unhandledText(stmt, meta))
	}

	return logCommand(meta, node, stmt), nil
}
