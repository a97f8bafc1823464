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

// CreateRole represents a CREATE ROLE statement, optionally copying an
// existing role's privileges (AS COPY OF).
type CreateRole struct {
	Name     Name
	From     *Name
	IfExists IfExistsDo
}

// Format implements the NodeFormatter interface.
func (node *CreateRole) Format(ctx *FmtCtx) {
	ctx.WriteString("CREATE ")
	if node.IfExists == IfExistsReplace {
		ctx.WriteString("OR REPLACE ")
	}
	ctx.WriteString("ROLE ")
	ctx.FormatNode(node.Name)
	if node.IfExists == IfExistsDoNothing {
		ctx.WriteString(" IF NOT EXISTS")
	}
	if node.From != nil {
		ctx.WriteString(" AS COPY OF ")
		ctx.FormatNode(*node.From)
	}
}

// StatementTag implements the Statement interface.
func (*CreateRole) StatementTag() string { return "CREATE ROLE" }

// AdminCommand implements the AdminStatement interface.
func (*CreateRole) AdminCommand() {}

// DropRole represents a DROP ROLE statement.
type DropRole struct {
	Name     Name
	IfExists bool
}

// Format implements the NodeFormatter interface.
func (node *DropRole) Format(ctx *FmtCtx) {
	ctx.WriteString("DROP ROLE ")
	ctx.FormatNode(node.Name)
	if node.IfExists {
		ctx.WriteString(" IF EXISTS")
	}
}

// StatementTag implements the Statement interface.
func (*DropRole) StatementTag() string { return "DROP ROLE" }

// AdminCommand implements the AdminStatement interface.
func (*DropRole) AdminCommand() {}

// GrantRolesToUsers represents a GRANT ROLE statement. Each named role
// is granted to each named user.
type GrantRolesToUsers struct {
	Roles NameList
	Users NameList
}

// Format implements the NodeFormatter interface.
func (node *GrantRolesToUsers) Format(ctx *FmtCtx) {
	ctx.WriteString("GRANT ROLE ")
	ctx.FormatNode(&node.Roles)
	ctx.WriteString(" TO ")
	ctx.FormatNode(&node.Users)
}

// StatementTag implements the Statement interface.
func (*GrantRolesToUsers) StatementTag() string { return "GRANT ROLE" }

// AdminCommand implements the AdminStatement interface.
func (*GrantRolesToUsers) AdminCommand() {}

// RevokeRolesFromUsers represents a REVOKE ROLE statement.
type RevokeRolesFromUsers struct {
	Roles NameList
	Users NameList
}

// Format implements the NodeFormatter interface.
func (node *RevokeRolesFromUsers) Format(ctx *FmtCtx) {
	ctx.WriteString("REVOKE ROLE ")
	ctx.FormatNode(&node.Roles)
	ctx.WriteString(" FROM ")
	ctx.FormatNode(&node.Users)
}

// StatementTag implements the Statement interface.
func (*RevokeRolesFromUsers) StatementTag() string { return "REVOKE ROLE" }

// AdminCommand implements the AdminStatement interface.
func (*RevokeRolesFromUsers) AdminCommand() {}
