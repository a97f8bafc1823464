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

// EnsureValidNonSystemDatabase fails execution when the target is the
// protected system database. Operation names the attempted operation
// for the error message ("drop", "stop").
type EnsureValidNonSystemDatabase struct {
	baseNode
	singleSourceNode

	Database  string
	Operation string
}

// NewEnsureValidNonSystemDatabase creates the guard.
func NewEnsureValidNonSystemDatabase(id ID, source Node, database, operation string) *EnsureValidNonSystemDatabase {
	return &EnsureValidNonSystemDatabase{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Database:         database,
		Operation:        operation,
	}
}

// Op implements the Node interface.
func (*EnsureValidNonSystemDatabase) Op() string { return "EnsureValidNonSystemDatabase" }

// WithSource implements the Node interface.
func (n *EnsureValidNonSystemDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *EnsureValidNonSystemDatabase) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" database=%s operation=%s", n.Database, redact.SafeString(n.Operation))
}

// EnsureValidNumberOfDatabases fails execution when creating another
// database would exceed the configured cluster-wide maximum.
type EnsureValidNumberOfDatabases struct {
	baseNode
	singleSourceNode

	Max int
}

// NewEnsureValidNumberOfDatabases creates the guard.
func NewEnsureValidNumberOfDatabases(id ID, source Node, max int) *EnsureValidNumberOfDatabases {
	return &EnsureValidNumberOfDatabases{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		Max:              max,
	}
}

// Op implements the Node interface.
func (*EnsureValidNumberOfDatabases) Op() string { return "EnsureValidNumberOfDatabases" }

// WithSource implements the Node interface.
func (n *EnsureValidNumberOfDatabases) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *EnsureValidNumberOfDatabases) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" max=%d", redact.Safe(n.Max))
}

// CreateDatabase creates a database.
type CreateDatabase struct {
	baseNode
	singleSourceNode

	Name string
}

// NewCreateDatabase creates a CreateDatabase node.
func NewCreateDatabase(id ID, source Node, name string) *CreateDatabase {
	return &CreateDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*CreateDatabase) Op() string { return "CreateDatabase" }

// WithSource implements the Node interface.
func (n *CreateDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *CreateDatabase) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// DropDatabase drops a database.
type DropDatabase struct {
	baseNode
	singleSourceNode

	Name string
}

// NewDropDatabase creates a DropDatabase node.
func NewDropDatabase(id ID, source Node, name string) *DropDatabase {
	return &DropDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*DropDatabase) Op() string { return "DropDatabase" }

// WithSource implements the Node interface.
func (n *DropDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *DropDatabase) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// StartDatabase brings a stopped database online.
type StartDatabase struct {
	baseNode
	singleSourceNode

	Name string
}

// NewStartDatabase creates a StartDatabase node.
func NewStartDatabase(id ID, source Node, name string) *StartDatabase {
	return &StartDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*StartDatabase) Op() string { return "StartDatabase" }

// WithSource implements the Node interface.
func (n *StartDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *StartDatabase) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// StopDatabase takes a database offline.
type StopDatabase struct {
	baseNode
	singleSourceNode

	Name string
}

// NewStopDatabase creates a StopDatabase node.
func NewStopDatabase(id ID, source Node, name string) *StopDatabase {
	return &StopDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*StopDatabase) Op() string { return "StopDatabase" }

// WithSource implements the Node interface.
func (n *StopDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *StopDatabase) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// ShowUsers lists all users.
type ShowUsers struct {
	baseNode
	singleSourceNode
}

// NewShowUsers creates a ShowUsers node.
func NewShowUsers(id ID, source Node) *ShowUsers {
	return &ShowUsers{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}}
}

// Op implements the Node interface.
func (*ShowUsers) Op() string { return "ShowUsers" }

// WithSource implements the Node interface.
func (n *ShowUsers) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowUsers) formatArgs(*redact.StringBuilder) {}

// ShowRoles lists roles.
type ShowRoles struct {
	baseNode
	singleSourceNode

	ShowAll   bool
	WithUsers bool
}

// NewShowRoles creates a ShowRoles node.
func NewShowRoles(id ID, source Node, showAll, withUsers bool) *ShowRoles {
	return &ShowRoles{
		baseNode:         baseNode{id: id},
		singleSourceNode: singleSourceNode{source: source},
		ShowAll:          showAll,
		WithUsers:        withUsers,
	}
}

// Op implements the Node interface.
func (*ShowRoles) Op() string { return "ShowRoles" }

// WithSource implements the Node interface.
func (n *ShowRoles) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowRoles) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" all=%v withUsers=%v", redact.Safe(n.ShowAll), redact.Safe(n.WithUsers))
}

// ShowPrivileges lists privilege rows. Scope is the canonical scope
// rendering, e.g. "ALL", "ROLE reader".
type ShowPrivileges struct {
	baseNode
	singleSourceNode

	Scope string
}

// NewShowPrivileges creates a ShowPrivileges node.
func NewShowPrivileges(id ID, source Node, scope string) *ShowPrivileges {
	return &ShowPrivileges{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Scope: scope}
}

// Op implements the Node interface.
func (*ShowPrivileges) Op() string { return "ShowPrivileges" }

// WithSource implements the Node interface.
func (n *ShowPrivileges) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowPrivileges) formatArgs(sb *redact.StringBuilder) { sb.Printf(" scope=%s", n.Scope) }

// ShowDatabases lists all databases.
type ShowDatabases struct {
	baseNode
	singleSourceNode
}

// NewShowDatabases creates a ShowDatabases node.
func NewShowDatabases(id ID, source Node) *ShowDatabases {
	return &ShowDatabases{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}}
}

// Op implements the Node interface.
func (*ShowDatabases) Op() string { return "ShowDatabases" }

// WithSource implements the Node interface.
func (n *ShowDatabases) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowDatabases) formatArgs(*redact.StringBuilder) {}

// ShowDefaultDatabase reports the session default database.
type ShowDefaultDatabase struct {
	baseNode
	singleSourceNode
}

// NewShowDefaultDatabase creates a ShowDefaultDatabase node.
func NewShowDefaultDatabase(id ID, source Node) *ShowDefaultDatabase {
	return &ShowDefaultDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}}
}

// Op implements the Node interface.
func (*ShowDefaultDatabase) Op() string { return "ShowDefaultDatabase" }

// WithSource implements the Node interface.
func (n *ShowDefaultDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowDefaultDatabase) formatArgs(*redact.StringBuilder) {}

// ShowDatabase reports the status of one database.
type ShowDatabase struct {
	baseNode
	singleSourceNode

	Name string
}

// NewShowDatabase creates a ShowDatabase node.
func NewShowDatabase(id ID, source Node, name string) *ShowDatabase {
	return &ShowDatabase{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Name: name}
}

// Op implements the Node interface.
func (*ShowDatabase) Op() string { return "ShowDatabase" }

// WithSource implements the Node interface.
func (n *ShowDatabase) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *ShowDatabase) formatArgs(sb *redact.StringBuilder) { sb.Printf(" name=%s", n.Name) }

// LogSystemCommand roots every plan that mutates persistent
// administrative state. Command is the canonical rendering of the
// statement; it never contains a literal credential.
type LogSystemCommand struct {
	baseNode
	singleSourceNode

	Command string
}

// NewLogSystemCommand creates a LogSystemCommand node.
func NewLogSystemCommand(id ID, source Node, command string) *LogSystemCommand {
	return &LogSystemCommand{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Command: command}
}

// Op implements the Node interface.
func (*LogSystemCommand) Op() string { return "LogSystemCommand" }

// WithSource implements the Node interface.
func (n *LogSystemCommand) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *LogSystemCommand) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" command=%q", n.Command)
}

// SystemProcedureCall invokes an administrative procedure with the
// original query text and the bound parameter set.
type SystemProcedureCall struct {
	baseNode
	zeroSourceNode

	Procedure string
	Query     string
	Params    map[string]interface{}
}

// NewSystemProcedureCall creates a SystemProcedureCall node.
func NewSystemProcedureCall(id ID, procedure, query string, params map[string]interface{}) *SystemProcedureCall {
	return &SystemProcedureCall{baseNode: baseNode{id: id}, Procedure: procedure, Query: query, Params: params}
}

// Op implements the Node interface.
func (*SystemProcedureCall) Op() string { return "SystemProcedureCall" }

// WithSource implements the Node interface.
func (n *SystemProcedureCall) WithSource(Node) Node { return n }

func (n *SystemProcedureCall) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" procedure=%s", n.Procedure)
}

// Selection filters the rows produced by its source through a
// predicate.
type Selection struct {
	baseNode
	singleSourceNode

	Predicate ast.Expr
}

// NewSelection creates a Selection node.
func NewSelection(id ID, predicate ast.Expr, source Node) *Selection {
	return &Selection{baseNode: baseNode{id: id}, singleSourceNode: singleSourceNode{source: source}, Predicate: predicate}
}

// Op implements the Node interface.
func (*Selection) Op() string { return "Selection" }

// WithSource implements the Node interface.
func (n *Selection) WithSource(src Node) Node {
	c := *n
	c.source = src
	return &c
}

func (n *Selection) formatArgs(sb *redact.StringBuilder) {
	sb.Printf(" predicate=%s", ast.AsString(n.Predicate))
}
