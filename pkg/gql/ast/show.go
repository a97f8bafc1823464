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

package ast

// ShowUsers represents a SHOW USERS statement.
type ShowUsers struct{}

// Format implements the NodeFormatter interface.
func (*ShowUsers) Format(ctx *FmtCtx) { ctx.WriteString("SHOW USERS") }

// StatementTag implements the Statement interface.
func (*ShowUsers) StatementTag() string { return "SHOW USERS" }

// AdminCommand implements the AdminStatement interface.
func (*ShowUsers) AdminCommand() {}

// ShowRoles represents a SHOW ROLES statement. ShowAll includes roles
// with no users; WithUsers adds one row per (role, user) pair.
type ShowRoles struct {
	ShowAll   bool
	WithUsers bool
}

// Format implements the NodeFormatter interface.
func (node *ShowRoles) Format(ctx *FmtCtx) {
	ctx.WriteString("SHOW ")
	if node.ShowAll {
		ctx.WriteString("ALL ")
	} else {
		ctx.WriteString("POPULATED ")
	}
	ctx.WriteString("ROLES")
	if node.WithUsers {
		ctx.WriteString(" WITH USERS")
	}
}

// StatementTag implements the Statement interface.
func (*ShowRoles) StatementTag() string { return "SHOW ROLES" }

// AdminCommand implements the AdminStatement interface.
func (*ShowRoles) AdminCommand() {}

// ShowPrivilegeScope selects whose privileges a SHOW PRIVILEGES
// statement lists.
type ShowPrivilegeScope int

const (
	// ShowAllPrivileges lists every privilege row.
	ShowAllPrivileges ShowPrivilegeScope = iota
	// ShowRolePrivileges lists the privileges of the named roles.
	ShowRolePrivileges
	// ShowUserPrivileges lists the effective privileges of the named
	// users.
	ShowUserPrivileges
)

// ShowPrivileges represents a SHOW PRIVILEGES statement.
type ShowPrivileges struct {
	Scope ShowPrivilegeScope
	Names NameList
}

// Format implements the NodeFormatter interface.
func (node *ShowPrivileges) Format(ctx *FmtCtx) {
	ctx.WriteString("SHOW ")
	switch node.Scope {
	case ShowRolePrivileges:
		ctx.WriteString("ROLE ")
		ctx.FormatNode(&node.Names)
		ctx.WriteByte(' ')
	case ShowUserPrivileges:
		ctx.WriteString("USER ")
		ctx.FormatNode(&node.Names)
		ctx.WriteByte(' ')
	default:
		ctx.WriteString("ALL ")
	}
	ctx.WriteString("PRIVILEGES")
}

// StatementTag implements the Statement interface.
func (*ShowPrivileges) StatementTag() string { return "SHOW PRIVILEGES" }

// AdminCommand implements the AdminStatement interface.
func (*ShowPrivileges) AdminCommand() {}

// ShowDatabases represents a SHOW DATABASES statement.
type ShowDatabases struct{}

// Format implements the NodeFormatter interface.
func (*ShowDatabases) Format(ctx *FmtCtx) { ctx.WriteString("SHOW DATABASES") }

// StatementTag implements the Statement interface.
func (*ShowDatabases) StatementTag() string { return "SHOW DATABASES" }

// AdminCommand implements the AdminStatement interface.
func (*ShowDatabases) AdminCommand() {}

// ShowDefaultDatabase represents a SHOW DEFAULT DATABASE statement.
type ShowDefaultDatabase struct{}

// Format implements the NodeFormatter interface.
func (*ShowDefaultDatabase) Format(ctx *FmtCtx) { ctx.WriteString("SHOW DEFAULT DATABASE") }

// StatementTag implements the Statement interface.
func (*ShowDefaultDatabase) StatementTag() string { return "SHOW DEFAULT DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*ShowDefaultDatabase) AdminCommand() {}

// ShowDatabase represents a SHOW DATABASE <name> statement.
type ShowDatabase struct {
	Name Name
}

// Format implements the NodeFormatter interface.
func (node *ShowDatabase) Format(ctx *FmtCtx) {
	ctx.WriteString("SHOW DATABASE ")
	ctx.FormatNode(node.Name)
}

// StatementTag implements the Statement interface.
func (*ShowDatabase) StatementTag() string { return "SHOW DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*ShowDatabase) AdminCommand() {}
