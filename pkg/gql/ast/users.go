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

// CreateUser represents a CREATE USER statement.
type CreateUser struct {
	Name                  Name
	Password              Password
	RequirePasswordChange bool
	Suspended             bool
	IfExists              IfExistsDo
}

// Format implements the NodeFormatter interface.
func (node *CreateUser) Format(ctx *FmtCtx) {
	ctx.WriteString("CREATE ")
	if node.IfExists == IfExistsReplace {
		ctx.WriteString("OR REPLACE ")
	}
	ctx.WriteString("USER ")
	ctx.FormatNode(node.Name)
	if node.IfExists == IfExistsDoNothing {
		ctx.WriteString(" IF NOT EXISTS")
	}
	ctx.WriteString(" SET PASSWORD ")
	ctx.FormatNode(node.Password)
	if node.RequirePasswordChange {
		ctx.WriteString(" CHANGE REQUIRED")
	} else {
		ctx.WriteString(" CHANGE NOT REQUIRED")
	}
	if node.Suspended {
		ctx.WriteString(" SET STATUS SUSPENDED")
	}
}

// StatementTag implements the Statement interface.
func (*CreateUser) StatementTag() string { return "CREATE USER" }

// AdminCommand implements the AdminStatement interface.
func (*CreateUser) AdminCommand() {}

// DropUser represents a DROP USER statement.
type DropUser struct {
	Name     Name
	IfExists bool
}

// Format implements the NodeFormatter interface.
func (node *DropUser) Format(ctx *FmtCtx) {
	ctx.WriteString("DROP USER ")
	ctx.FormatNode(node.Name)
	if node.IfExists {
		ctx.WriteString(" IF EXISTS")
	}
}

// StatementTag implements the Statement interface.
func (*DropUser) StatementTag() string { return "DROP USER" }

// AdminCommand implements the AdminStatement interface.
func (*DropUser) AdminCommand() {}

// AlterUser represents an ALTER USER statement. Nil fields were not
// mentioned by the statement and keep their current value.
type AlterUser struct {
	Name                  Name
	Password              *Password
	RequirePasswordChange *bool
	Suspended             *bool
}

// Format implements the NodeFormatter interface.
func (node *AlterUser) Format(ctx *FmtCtx) {
	ctx.WriteString("ALTER USER ")
	ctx.FormatNode(node.Name)
	if node.Password != nil {
		ctx.WriteString(" SET PASSWORD ")
		ctx.FormatNode(*node.Password)
	}
	if node.RequirePasswordChange != nil {
		if *node.RequirePasswordChange {
			ctx.WriteString(" CHANGE REQUIRED")
		} else {
			ctx.WriteString(" CHANGE NOT REQUIRED")
		}
	}
	if node.Suspended != nil {
		if *node.Suspended {
			ctx.WriteString(" SET STATUS SUSPENDED")
		} else {
			ctx.WriteString(" SET STATUS ACTIVE")
		}
	}
}

// StatementTag implements the Statement interface.
func (*AlterUser) StatementTag() string { return "ALTER USER" }

// AdminCommand implements the AdminStatement interface.
func (*AlterUser) AdminCommand() {}

// SetOwnPassword represents an ALTER CURRENT USER SET PASSWORD
// statement. Both passwords may independently be literals or
// parameters.
type SetOwnPassword struct {
	NewPassword     Password
	CurrentPassword Password
}

// Format implements the NodeFormatter interface.
func (node *SetOwnPassword) Format(ctx *FmtCtx) {
	ctx.WriteString("ALTER CURRENT USER SET PASSWORD FROM ")
	ctx.FormatNode(node.CurrentPassword)
	ctx.WriteString(" TO ")
	ctx.FormatNode(node.NewPassword)
}

// StatementTag implements the Statement interface.
func (*SetOwnPassword) StatementTag() string { return "ALTER CURRENT USER" }

// AdminCommand implements the AdminStatement interface.
func (*SetOwnPassword) AdminCommand() {}
