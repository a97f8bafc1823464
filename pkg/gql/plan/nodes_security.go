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

package plan

import (
	"github.com/cockroachdb/redact"

	"github.com/sylvadb/sylva/pkg/gql/ast"
)

// AssertDbmsAdmin checks that the executing user may perform the given
// administrative actions on the instance. Every mutating chain is
// rooted in an assertion node.
type AssertDbmsAdmin struct {
	baseNode
	zeroSourceNode

	Actions []AdminAction
}

// NewAssertDbmsAdmin creates an AssertDbmsAdmin node.
func NewAssertDbmsAdmin(id ID, actions ...AdminAction) *AssertDbmsAdmin {
	return &AssertDbmsAdmin{baseNode: baseNode{id: id}, Actions: actions}
}

// Op implements the Node interface.
func (*AssertDbmsAdmin) Op() string { return "AssertDbmsAdmin" }

// WithSource implements the Node interface.
func (n *AssertDbmsAdmin) WithSource(Node) Node { return n }

func (n *AssertDbmsAdmin) formatArgs(sb *redact.StringBuilder) {
	sb.SafeString(" actions=[")
	for i, a := range n.Actions {
		if i > 0 {
			sb.SafeString(", ")
		}
		sb.SafeString(redact.SafeString(a))
	}
	sb.SafeString("]")
}

// AssertDatabaseAdmin checks a database-scoped administrative action;
// it is used for actions that can be delegated per-database.
type AssertDatabaseAdmin struct {
	baseNode
	zeroSourceNode

	Action   AdminAction
	Database string
}

// NewAssertDatabaseAdmin creates an AssertDatabaseAdmin node.
func NewAssertDatabaseAdmin(id ID, action AdminAction, database string) *AssertDatabaseAdmin {
	return &AssertDatabaseAdmin{baseNode: baseNode{id: id}, Action: action, Database: database}
}

// Op implements the Node interface.
func (*AssertDatabaseAdmin) Op() string { return "AssertDatabaseAdmin" }

// WithSource implements the Node interface.
func (n *AssertDatabaseAdmin) WithSource(Node) Node { return n }

func (n *AssertDatabaseAdmin) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" action=%s database=%s", redact.SafeString(n.Action), n.Database)
}

// DoNothingIfExists short-circuits the remaining chain at execution
// time when the named entity already exists, instead of raising an
// error.
type DoNothingIfExists struct {
	baseNode
	singleSourceNode

	Kind string
	Name string
}

// NewDoNothingIfExists creates a DoNothingIfExists guard.
func NewDoNothingIfExists(id ID, source Node, kind, name string) *DoNothingIfExists {
	return &DoNothingIfExists{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Kind: kind, Name: name}
}

// Op implements the Node interface.
func (*DoNothingIfExists) Op() string { return "DoNothingIfExists" }

// WithSource implements the Node interface.
func (n *DoNothingIfExists) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DoNothingIfExists) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" kind=%s name=%s", redact.SafeString(n.Kind), n.Name)
}

// DoNothingIfNotExists short-circuits the remaining chain at execution
// time when the named entity is missing.
type DoNothingIfNotExists struct {
	baseNode
	singleSourceNode

	Kind string
	Name string
}

// NewDoNothingIfNotExists creates a DoNothingIfNotExists guard.
func NewDoNothingIfNotExists(id ID, source Node, kind, name string) *DoNothingIfNotExists {
	return &DoNothingIfNotExists{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Kind: kind, Name: name}
}

// Op implements the Node interface.
func (*DoNothingIfNotExists) Op() string { return "DoNothingIfNotExists" }

// WithSource implements the Node interface.
func (n *DoNothingIfNotExists) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DoNothingIfNotExists) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" kind=%s name=%s", redact.SafeString(n.Kind), n.Name)
}

// EnsureNodeExists fails execution when the named entity is missing.
type EnsureNodeExists struct {
	baseNode
	singleSourceNode

	Kind string
	Name string
}

// NewEnsureNodeExists creates an EnsureNodeExists guard.
func NewEnsureNodeExists(id ID, source Node, kind, name string) *EnsureNodeExists {
	return &EnsureNodeExists{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Kind: kind, Name: name}
}

// Op implements the Node interface.
func (*EnsureNodeExists) Op() string { return "EnsureNodeExists" }

// WithSource implements the Node interface.
func (n *EnsureNodeExists) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *EnsureNodeExists) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" kind=%s name=%s", redact.SafeString(n.Kind), n.Name)
}

// CreateUser records a new user.
type CreateUser struct {
	baseNode
	singleSourceNode

	Name string
	// PasswordBytes holds the encoded literal credential;
	// PasswordParam names the bound parameter holding it instead.
	// Exactly one is set.
	PasswordBytes         []byte
	PasswordParam         string
	RequirePasswordChange bool
	Suspended             bool
}

// NewCreateUser creates a CreateUser node.
func NewCreateUser(
	id ID, source Node, name string, passwordBytes []byte, passwordParam string,
	requirePasswordChange, suspended bool,
) *CreateUser {
	return &CreateUser{
		baseNode:              baseNode{id: id},
		singleSourceNode:      singleSourceNode{source: source},
		Name:                  name,
		PasswordBytes:         passwordBytes,
		PasswordParam:         passwordParam,
		RequirePasswordChange: requirePasswordChange,
		Suspended:             suspended,
	}
}

// Op implements the Node interface.
func (*CreateUser) Op() string { return "CreateUser" }

// WithSource implements the Node interface.
func (n *CreateUser) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *CreateUser) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" name=%s requirePasswordChange=%v suspended=%v",
		n.Name, redact.Safe(n.RequirePasswordChange), redact.Safe(n.Suspended))
}

// DropUser removes a user.
type DropUser struct {
	baseNode
	singleSourceNode

	Name string
}

// NewDropUser creates a DropUser node.
func NewDropUser(id ID, source Node, name string) *DropUser {
	return &DropUser{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*DropUser) Op() string { return "DropUser" }

// WithSource implements the Node interface.
func (n *DropUser) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DropUser) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// AlterUser updates a user's credentials or status. Nil optionals keep
// the current value.
type AlterUser struct {
	baseNode
	singleSourceNode

	Name                  string
	PasswordBytes         []byte
	PasswordParam         string
	RequirePasswordChange *bool
	Suspended             *bool
}

// NewAlterUser creates an AlterUser node.
func NewAlterUser(
	id ID, source Node, name string, passwordBytes []byte, passwordParam string,
	requirePasswordChange, suspended *bool,
) *AlterUser {
	return &AlterUser{
		baseNode:              baseNode{id: id},
		singleSourceNode:      singleSourceNode{source: source},
		Name:                  name,
		PasswordBytes:         passwordBytes,
		PasswordParam:         passwordParam,
		RequirePasswordChange: requirePasswordChange,
		Suspended:             suspended,
	}
}

// Op implements the Node interface.
func (*AlterUser) Op() string { return "AlterUser" }

// WithSource implements the Node interface.
func (n *AlterUser) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *AlterUser) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// SetOwnPassword changes the executing user's own password; no
// administrative assertion applies.
type SetOwnPassword struct {
	baseNode
	zeroSourceNode

	NewPasswordBytes     []byte
	NewPasswordParam     string
	CurrentPasswordBytes []byte
	CurrentPasswordParam string
}

// NewSetOwnPassword creates a SetOwnPassword node.
func NewSetOwnPassword(
	id ID, newPasswordBytes []byte, newPasswordParam string,
	currentPasswordBytes []byte, currentPasswordParam string,
) *SetOwnPassword {
	return &SetOwnPassword{
		baseNode:             baseNode{id: id},
		NewPasswordBytes:     newPasswordBytes,
		NewPasswordParam:     newPasswordParam,
		CurrentPasswordBytes: currentPasswordBytes,
		CurrentPasswordParam: currentPasswordParam,
	}
}

// Op implements the Node interface.
func (*SetOwnPassword) Op() string { return "SetOwnPassword" }

// WithSource implements the Node interface.
func (n *SetOwnPassword) WithSource(Node) Node { return n }

func (n *SetOwnPassword) formatArgs(*redact.StringBuilder) {}

// CreateRole records a new role.
type CreateRole struct {
	baseNode
	singleSourceNode

	Name string
}

// NewCreateRole creates a CreateRole node.
func NewCreateRole(id ID, source Node, name string) *CreateRole {
	return &CreateRole{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*CreateRole) Op() string { return "CreateRole" }

// WithSource implements the Node interface.
func (n *CreateRole) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *CreateRole) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// DropRole removes a role.
type DropRole struct {
	baseNode
	singleSourceNode

	Name string
}

// NewDropRole creates a DropRole node.
func NewDropRole(id ID, source Node, name string) *DropRole {
	return &DropRole{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*DropRole) Op() string { return "DropRole" }

// WithSource implements the Node interface.
func (n *DropRole) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DropRole) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// CopyRolePrivileges copies all privilege rows of the given grant type
// from one role to another.
type CopyRolePrivileges struct {
	baseNode
	singleSourceNode

	To        string
	From      string
	GrantDeny string
}

// NewCopyRolePrivileges creates a CopyRolePrivileges node. grantDeny is
// "GRANTED" or "DENIED".
func NewCopyRolePrivileges(id ID, source Node, to, from, grantDeny string) *CopyRolePrivileges {
	return &CopyRolePrivileges{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		To:               to,
		From:             from,
		GrantDeny:        grantDeny,
	}
}

// Op implements the Node interface.
func (*CopyRolePrivileges) Op() string { return "CopyRolePrivileges" }

// WithSource implements the Node interface.
func (n *CopyRolePrivileges) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *CopyRolePrivileges) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" to=%s from=%s type=%s", n.To, n.From, redact.SafeString(n.GrantDeny))
}

// GrantRoleToUser grants one role to one user.
type GrantRoleToUser struct {
	baseNode
	singleSourceNode

	Role string
	User string
}

// NewGrantRoleToUser creates a GrantRoleToUser node.
func NewGrantRoleToUser(id ID, source Node, role, user string) *GrantRoleToUser {
	return &GrantRoleToUser{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Role: role, User: user}
}

// Op implements the Node interface.
func (*GrantRoleToUser) Op() string { return "GrantRoleToUser" }

// WithSource implements the Node interface.
func (n *GrantRoleToUser) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *GrantRoleToUser) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" role=%s user=%s", n.Role, n.User)
}

// RevokeRoleFromUser revokes one role from one user.
type RevokeRoleFromUser struct {
	baseNode
	singleSourceNode

	Role string
	User string
}

// NewRevokeRoleFromUser creates a RevokeRoleFromUser node.
func NewRevokeRoleFromUser(id ID, source Node, role, user string) *RevokeRoleFromUser {
	return &RevokeRoleFromUser{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Role: role, User: user}
}

// Op implements the Node interface.
func (*RevokeRoleFromUser) Op() string { return "RevokeRoleFromUser" }

// WithSource implements the Node interface.
func (n *RevokeRoleFromUser) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *RevokeRoleFromUser) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" role=%s user=%s", n.Role, n.User)
}

// GrantAccess grants a database access privilege to a role.
type GrantAccess struct {
	baseNode
	singleSourceNode

	Database string
	Role     string
}

// NewGrantAccess creates a GrantAccess node.
func NewGrantAccess(id ID, source Node, database, role string) *GrantAccess {
	return &GrantAccess{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Database: database, Role: role}
}

// Op implements the Node interface.
func (*GrantAccess) Op() string { return "GrantAccess" }

// WithSource implements the Node interface.
func (n *GrantAccess) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *GrantAccess) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" database=%s role=%s", n.Database, n.Role)
}

// DenyAccess denies a database access privilege to a role.
type DenyAccess struct {
	baseNode
	singleSourceNode

	Database string
	Role     string
}

// NewDenyAccess creates a DenyAccess node.
func NewDenyAccess(id ID, source Node, database, role string) *DenyAccess {
	return &DenyAccess{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Database: database, Role: role}
}

// Op implements the Node interface.
func (*DenyAccess) Op() string { return "DenyAccess" }

// WithSource implements the Node interface.
func (n *DenyAccess) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DenyAccess) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" database=%s role=%s", n.Database, n.Role)
}

// RevokeAccess removes a previously granted or denied database access
// privilege from a role.
type RevokeAccess struct {
	baseNode
	singleSourceNode

	Database string
	Role     string
	Revoke   ast.RevokeType
}

// NewRevokeAccess creates a RevokeAccess node.
func NewRevokeAccess(id ID, source Node, database, role string, revoke ast.RevokeType) *RevokeAccess {
	return &RevokeAccess{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Database:         database,
		Role:             role,
		Revoke:           revoke,
	}
}

// Op implements the Node interface.
func (*RevokeAccess) Op() string { return "RevokeAccess" }

// WithSource implements the Node interface.
func (n *RevokeAccess) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *RevokeAccess) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" database=%s role=%s type=%s", n.Database, n.Role, redact.Safe(n.Revoke))
}

// GrantTraverse grants a traverse privilege on one atomic segment to a
// role.
type GrantTraverse struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Role      string
}

// NewGrantTraverse creates a GrantTraverse node.
func NewGrantTraverse(id ID, source Node, graph string, qualifier ast.Qualifier, role string) *GrantTraverse {
	return &GrantTraverse{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Role:             role,
	}
}

// Op implements the Node interface.
func (*GrantTraverse) Op() string { return "GrantTraverse" }

// WithSource implements the Node interface.
func (n *GrantTraverse) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *GrantTraverse) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s", n.Graph, ast.AsString(n.Qualifier), n.Role)
}

// DenyTraverse denies a traverse privilege on one atomic segment to a
// role.
type DenyTraverse struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Role      string
}

// NewDenyTraverse creates a DenyTraverse node.
func NewDenyTraverse(id ID, source Node, graph string, qualifier ast.Qualifier, role string) *DenyTraverse {
	return &DenyTraverse{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Role:             role,
	}
}

// Op implements the Node interface.
func (*DenyTraverse) Op() string { return "DenyTraverse" }

// WithSource implements the Node interface.
func (n *DenyTraverse) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DenyTraverse) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s", n.Graph, ast.AsString(n.Qualifier), n.Role)
}

// RevokeTraverse removes a traverse privilege row from a role.
type RevokeTraverse struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Role      string
	Revoke    ast.RevokeType
}

// NewRevokeTraverse creates a RevokeTraverse node.
func NewRevokeTraverse(
	id ID, source Node, graph string, qualifier ast.Qualifier, role string, revoke ast.RevokeType,
) *RevokeTraverse {
	return &RevokeTraverse{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Role:             role,
		Revoke:           revoke,
	}
}

// Op implements the Node interface.
func (*RevokeTraverse) Op() string { return "RevokeTraverse" }

// WithSource implements the Node interface.
func (n *RevokeTraverse) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *RevokeTraverse) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s type=%s",
		n.Graph, ast.AsString(n.Qualifier), n.Role, redact.Safe(n.Revoke))
}

// GrantWrite grants a write privilege on one atomic segment to a role.
// Write privileges always cover all properties.
type GrantWrite struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
}

// NewGrantWrite creates a GrantWrite node.
func NewGrantWrite(id ID, source Node, graph string, qualifier ast.Qualifier, role string) *GrantWrite {
	return &GrantWrite{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         ast.AllPropertiesResource{},
		Role:             role,
	}
}

// Op implements the Node interface.
func (*GrantWrite) Op() string { return "GrantWrite" }

// WithSource implements the Node interface.
func (n *GrantWrite) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *GrantWrite) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s", n.Graph, ast.AsString(n.Qualifier), n.Role)
}

// DenyWrite denies a write privilege on one atomic segment to a role.
type DenyWrite struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
}

// NewDenyWrite creates a DenyWrite node.
func NewDenyWrite(id ID, source Node, graph string, qualifier ast.Qualifier, role string) *DenyWrite {
	return &DenyWrite{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         ast.AllPropertiesResource{},
		Role:             role,
	}
}

// Op implements the Node interface.
func (*DenyWrite) Op() string { return "DenyWrite" }

// WithSource implements the Node interface.
func (n *DenyWrite) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DenyWrite) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s", n.Graph, ast.AsString(n.Qualifier), n.Role)
}

// RevokeWrite removes a write privilege row from a role.
type RevokeWrite struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
	Revoke    ast.RevokeType
}

// NewRevokeWrite creates a RevokeWrite node.
func NewRevokeWrite(
	id ID, source Node, graph string, qualifier ast.Qualifier, role string, revoke ast.RevokeType,
) *RevokeWrite {
	return &RevokeWrite{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         ast.AllPropertiesResource{},
		Role:             role,
		Revoke:           revoke,
	}
}

// Op implements the Node interface.
func (*RevokeWrite) Op() string { return "RevokeWrite" }

// WithSource implements the Node interface.
func (n *RevokeWrite) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *RevokeWrite) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s role=%s type=%s",
		n.Graph, ast.AsString(n.Qualifier), n.Role, redact.Safe(n.Revoke))
}

// GrantRead grants a read privilege on one atomic (segment, resource)
// pair to a role.
type GrantRead struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
}

// NewGrantRead creates a GrantRead node.
func NewGrantRead(
	id ID, source Node, graph string, qualifier ast.Qualifier, resource ast.Resource, role string,
) *GrantRead {
	return &GrantRead{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         resource,
		Role:             role,
	}
}

// Op implements the Node interface.
func (*GrantRead) Op() string { return "GrantRead" }

// WithSource implements the Node interface.
func (n *GrantRead) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *GrantRead) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s resource=%s role=%s",
		n.Graph, ast.AsString(n.Qualifier), ast.AsString(n.Resource), n.Role)
}

// DenyRead denies a read privilege on one atomic (segment, resource)
// pair to a role.
type DenyRead struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
}

// NewDenyRead creates a DenyRead node.
func NewDenyRead(
	id ID, source Node, graph string, qualifier ast.Qualifier, resource ast.Resource, role string,
) *DenyRead {
	return &DenyRead{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         resource,
		Role:             role,
	}
}

// Op implements the Node interface.
func (*DenyRead) Op() string { return "DenyRead" }

// WithSource implements the Node interface.
func (n *DenyRead) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DenyRead) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s resource=%s role=%s",
		n.Graph, ast.AsString(n.Qualifier), ast.AsString(n.Resource), n.Role)
}

// RevokeRead removes a read privilege row from a role.
type RevokeRead struct {
	baseNode
	singleSourceNode

	Graph     string
	Qualifier ast.Qualifier
	Resource  ast.Resource
	Role      string
	Revoke    ast.RevokeType
}

// NewRevokeRead creates a RevokeRead node.
func NewRevokeRead(
	id ID, source Node, graph string, qualifier ast.Qualifier, resource ast.Resource,
	role string, revoke ast.RevokeType,
) *RevokeRead {
	return &RevokeRead{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Graph:            graph,
		Qualifier:        qualifier,
		Resource:         resource,
		Role:             role,
		Revoke:           revoke,
	}
}

// Op implements the Node interface.
func (*RevokeRead) Op() string { return "RevokeRead" }

// WithSource implements the Node interface.
func (n *RevokeRead) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *RevokeRead) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" graph=%s segment=%s resource=%s role=%s type=%s",
		n.Graph, ast.AsString(n.Qualifier), ast.AsString(n.Resource), n.Role, redact.Safe(n.Revoke))
}
