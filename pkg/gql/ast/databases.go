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

// CreateDatabase represents a CREATE DATABASE statement.
type CreateDatabase struct {
	Name     Name
	IfExists IfExistsDo
}

// Format implements the NodeFormatter interface.
func (node *CreateDatabase) Format(ctx *FmtCtx) {
	ctx.WriteString("CREATE ")
	if node.IfExists == IfExistsReplace {
		ctx.WriteString("OR REPLACE ")
	}
	ctx.WriteString("DATABASE ")
	ctx.FormatNode(node.Name)
	if node.IfExists == IfExistsDoNothing {
		ctx.WriteString(" IF NOT EXISTS")
	}
}

// StatementTag implements the Statement interface.
func (*CreateDatabase) StatementTag() string { return "CREATE DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*CreateDatabase) AdminCommand() {}

// DropDatabase represents a DROP DATABASE statement.
type DropDatabase struct {
	Name     Name
	IfExists bool
}

// Format implements the NodeFormatter interface.
func (node *DropDatabase) Format(ctx *FmtCtx) {
	ctx.WriteString("DROP DATABASE ")
	ctx.FormatNode(node.Name)
	if node.IfExists {
		ctx.WriteString(" IF EXISTS")
	}
}

// StatementTag implements the Statement interface.
func (*DropDatabase) StatementTag() string { return "DROP DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*DropDatabase) AdminCommand() {}

// StartDatabase represents a START DATABASE statement.
type StartDatabase struct {
	Name Name
}

// Format implements the NodeFormatter interface.
func (node *StartDatabase) Format(ctx *FmtCtx) {
	ctx.WriteString("START DATABASE ")
	ctx.FormatNode(node.Name)
}

// StatementTag implements the Statement interface.
func (*StartDatabase) StatementTag() string { return "START DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*StartDatabase) AdminCommand() {}

// StopDatabase represents a STOP DATABASE statement.
type StopDatabase struct {
	Name Name
}

// Format implements the NodeFormatter interface.
func (node *StopDatabase) Format(ctx *FmtCtx) {
	ctx.WriteString("STOP DATABASE ")
	ctx.FormatNode(node.Name)
}

// StatementTag implements the Statement interface.
func (*StopDatabase) StatementTag() string { return "STOP DATABASE" }

// AdminCommand implements the AdminStatement interface.
func (*StopDatabase) AdminCommand() {}
