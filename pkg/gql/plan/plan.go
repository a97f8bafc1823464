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

// Package plan defines the operator tree produced by the administration
// planner. Each node performs one atomic administrative operation or
// guard and owns at most one source subtree, executed before the node
// itself. Trees are built bottom-up during planning and are never
// mutated afterwards: rewrites produce new nodes.
package plan

import (
	"github.com/cockroachdb/redact"
)

// ID identifies a plan node within one compilation. IDs are allocated
// by an IDGen and increase monotonically in allocation order.
type ID int

// IDGen allocates plan node IDs. Each compilation owns its own
// generator; generators are not safe for concurrent use.
type IDGen struct {
	next ID
}

// NewIDGen returns a generator starting at zero.
func NewIDGen() *IDGen { return &IDGen{} }

// Next returns the next ID.
func (g *IDGen) Next() ID {
	id := g.next
	g.next++
	return id
}

// Node is one operator in an administration plan tree. The set of
// implementations is closed: all live in this package.
type Node interface {
	// ID returns the node's identifier within its compilation.
	ID() ID

	// Source returns the subtree executed before this node, or nil.
	// A node exclusively owns its source; no node is referenced by
	// more than one parent.
	Source() Node

	// Op returns the operator name, e.g. "CreateUser".
	Op() string

	// WithSource returns a copy of the node with the given source and
	// the same ID. Nodes without a source slot return themselves.
	WithSource(src Node) Node

	// formatArgs renders the operator's parameters for diagnostics,
	// including a leading space when non-empty. User-supplied
	// identifiers are rendered as unsafe; credentials are never
	// rendered.
	formatArgs(sb *redact.StringBuilder)
}

type baseNode struct {
	id ID
}

func (n baseNode) ID() ID { return n.id }

// zeroSourceNode is embedded in leaf operators.
type zeroSourceNode struct{}

func (zeroSourceNode) Source() Node { return nil }

// singleSourceNode is embedded in operators with one source subtree.
type singleSourceNode struct {
	source Node
}

func (n singleSourceNode) Source() Node { return n.source }

// Flatten returns the chain from the root down to the innermost leaf.
// The reverse of this order is execution order.
func Flatten(root Node) []Node {
	var out []Node
	for n := root; n != nil; n = n.Source() {
		out = append(out, n)
	}
	return out
}

// FormatTree renders the plan tree for diagnostics, root first, one
// operator per line.
func FormatTree(root Node) redact.RedactableString {
	var sb redact.StringBuilder
	depth := 0
	for n := root; n != nil; n = n.Source() {
		if depth > 0 {
			sb.SafeString("\n")
			for i := 0; i < depth; i++ {
				sb.SafeString("  ")
			}
			sb.SafeString("└─ ")
		}
		sb.SafeString(redact.SafeString(n.Op()))
		n.formatArgs(&sb)
		depth++
	}
	return sb.RedactableString()
}

// Sprint renders the plan tree as a plain string.
func Sprint(root Node) string {
	return FormatTree(root).StripMarkers()
}

// AdminAction names the administrative capability an assertion node
// checks. Values are fixed keywords, safe for logs.
type AdminAction string

const (
	CreateUserAction      AdminAction = "CREATE USER"
	DropUserAction        AdminAction = "DROP USER"
	AlterUserAction       AdminAction = "ALTER USER"
	CreateRoleAction      AdminAction = "CREATE ROLE"
	DropRoleAction        AdminAction = "DROP ROLE"
	GrantRoleAction       AdminAction = "GRANT ROLE"
	RevokeRoleAction      AdminAction = "REVOKE ROLE"
	GrantPrivilegeAction  AdminAction = "GRANT PRIVILEGE"
	DenyPrivilegeAction   AdminAction = "DENY PRIVILEGE"
	RevokePrivilegeAction AdminAction = "REVOKE PRIVILEGE"
	ShowUserAction        AdminAction = "SHOW USER"
	ShowRoleAction        AdminAction = "SHOW ROLE"
	ShowPrivilegeAction   AdminAction = "SHOW PRIVILEGE"
	CreateDatabaseAction  AdminAction = "CREATE DATABASE"
	DropDatabaseAction    AdminAction = "DROP DATABASE"
	StartDatabaseAction   AdminAction = "START DATABASE"
	StopDatabaseAction    AdminAction = "STOP DATABASE"
	ShowDatabaseAction    AdminAction = "SHOW DATABASE"
)
