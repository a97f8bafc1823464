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

// PrivilegeKind enumerates the grantable privilege families.
type PrivilegeKind int

const (
	// PrivilegeAccess allows connecting to a database.
	PrivilegeAccess PrivilegeKind = iota
	// PrivilegeTraverse allows traversing graph elements.
	PrivilegeTraverse
	// PrivilegeWrite allows writing graph elements. Write privileges
	// implicitly cover all properties.
	PrivilegeWrite
	// PrivilegeRead allows reading properties.
	PrivilegeRead
	// PrivilegeMatch combines traverse and read.
	PrivilegeMatch
)

// GraphScope names the graph or database a privilege applies to.
type GraphScope struct {
	All      bool
	Database Name
}

// TargetName returns the concrete name passed to the execution layer,
// with "*" standing for all graphs.
func (s GraphScope) TargetName() string {
	if s.All {
		return "*"
	}
	return string(s.Database)
}

func (s GraphScope) format(ctx *FmtCtx, keyword string) {
	ctx.WriteString(keyword)
	if s.All {
		ctx.WriteString("S *")
		return
	}
	ctx.WriteByte(' ')
	ctx.FormatNode(s.Database)
}

// Qualifier restricts a graph privilege to a set of labels or
// relationship types. A compound qualifier denormalizes into atomic
// ones via Simplify; the expansion order follows declaration order so
// repeated compilations of the same statement produce identical plans.
type Qualifier interface {
	NodeFormatter

	// Simplify expands the qualifier into the atomic qualifiers the
	// execution layer understands.
	Simplify() []Qualifier
}

// AllQualifier applies a privilege to every element.
type AllQualifier struct{}

// Format implements the NodeFormatter interface.
func (q AllQualifier) Format(ctx *FmtCtx) { ctx.WriteString("ELEMENTS *") }

// Simplify implements the Qualifier interface.
func (q AllQualifier) Simplify() []Qualifier { return []Qualifier{q} }

// LabelAllQualifier applies a privilege to nodes of every label.
type LabelAllQualifier struct{}

// Format implements the NodeFormatter interface.
func (q LabelAllQualifier) Format(ctx *FmtCtx) { ctx.WriteString("NODES *") }

// Simplify implements the Qualifier interface.
func (q LabelAllQualifier) Simplify() []Qualifier { return []Qualifier{q} }

// LabelQualifier applies a privilege to nodes of one label.
type LabelQualifier struct {
	Label Name
}

// Format implements the NodeFormatter interface.
func (q LabelQualifier) Format(ctx *FmtCtx) {
	ctx.WriteString("NODES ")
	ctx.FormatNode(q.Label)
}

// Simplify implements the Qualifier interface.
func (q LabelQualifier) Simplify() []Qualifier { return []Qualifier{q} }

// LabelsQualifier applies a privilege to nodes of a set of labels.
type LabelsQualifier struct {
	Labels NameList
}

// Format implements the NodeFormatter interface.
func (q LabelsQualifier) Format(ctx *FmtCtx) {
	ctx.WriteString("NODES ")
	ctx.FormatNode(&q.Labels)
}

// Simplify implements the Qualifier interface.
func (q LabelsQualifier) Simplify() []Qualifier {
	out := make([]Qualifier, len(q.Labels))
	for i, l := range q.Labels {
		out[i] = LabelQualifier{Label: l}
	}
	return out
}

// RelationshipAllQualifier applies a privilege to relationships of
// every type.
type RelationshipAllQualifier struct{}

// Format implements the NodeFormatter interface.
func (q RelationshipAllQualifier) Format(ctx *FmtCtx) { ctx.WriteString("RELATIONSHIPS *") }

// Simplify implements the Qualifier interface.
func (q RelationshipAllQualifier) Simplify() []Qualifier { return []Qualifier{q} }

// RelationshipQualifier applies a privilege to relationships of one
// type.
type RelationshipQualifier struct {
	Type Name
}

// Format implements the NodeFormatter interface.
func (q RelationshipQualifier) Format(ctx *FmtCtx) {
	ctx.WriteString("RELATIONSHIPS ")
	ctx.FormatNode(q.Type)
}

// Simplify implements the Qualifier interface.
func (q RelationshipQualifier) Simplify() []Qualifier { return []Qualifier{q} }

// RelationshipsQualifier applies a privilege to relationships of a set
// of types.
type RelationshipsQualifier struct {
	Types NameList
}

// Format implements the NodeFormatter interface.
func (q RelationshipsQualifier) Format(ctx *FmtCtx) {
	ctx.WriteString("RELATIONSHIPS ")
	ctx.FormatNode(&q.Types)
}

// Simplify implements the Qualifier interface.
func (q RelationshipsQualifier) Simplify() []Qualifier {
	out := make([]Qualifier, len(q.Types))
	for i, t := range q.Types {
		out[i] = RelationshipQualifier{Type: t}
	}
	return out
}

// Resource is the property scope of a read-class privilege.
type Resource interface {
	NodeFormatter

	// Simplify expands the resource into atomic property resources.
	Simplify() []Resource

	// IsAllProperties reports whether the resource is exactly the "all
	// properties" resource.
	IsAllProperties() bool
}

// AllPropertiesResource covers every property.
type AllPropertiesResource struct{}

// Format implements the NodeFormatter interface.
func (r AllPropertiesResource) Format(ctx *FmtCtx) { ctx.WriteString("{*}") }

// Simplify implements the Resource interface.
func (r AllPropertiesResource) Simplify() []Resource { return []Resource{r} }

// IsAllProperties implements the Resource interface.
func (r AllPropertiesResource) IsAllProperties() bool { return true }

// PropertyResource covers a single named property.
type PropertyResource struct {
	Property Name
}

// Format implements the NodeFormatter interface.
func (r PropertyResource) Format(ctx *FmtCtx) {
	ctx.WriteByte('{')
	ctx.FormatNode(r.Property)
	ctx.WriteByte('}')
}

// Simplify implements the Resource interface.
func (r PropertyResource) Simplify() []Resource { return []Resource{r} }

// IsAllProperties implements the Resource interface.
func (r PropertyResource) IsAllProperties() bool { return false }

// PropertiesResource covers a set of named properties.
type PropertiesResource struct {
	Properties NameList
}

// Format implements the NodeFormatter interface.
func (r PropertiesResource) Format(ctx *FmtCtx) {
	ctx.WriteByte('{')
	ctx.FormatNode(&r.Properties)
	ctx.WriteByte('}')
}

// Simplify implements the Resource interface.
func (r PropertiesResource) Simplify() []Resource {
	out := make([]Resource, len(r.Properties))
	for i, p := range r.Properties {
		out[i] = PropertyResource{Property: p}
	}
	return out
}

// IsAllProperties implements the Resource interface.
func (r PropertiesResource) IsAllProperties() bool { return false }

// Privilege is the subject of a GRANT, DENY or REVOKE statement.
// Resource is nil for kinds that do not take one; Qualifier is nil for
// database privileges.
type Privilege struct {
	Kind      PrivilegeKind
	Resource  Resource
	Scope     GraphScope
	Qualifier Qualifier
}

// Format implements the NodeFormatter interface.
func (p *Privilege) Format(ctx *FmtCtx) {
	switch p.Kind {
	case PrivilegeAccess:
		ctx.WriteString("ACCESS ON ")
		p.Scope.format(ctx, "DATABASE")
		return
	case PrivilegeTraverse:
		ctx.WriteString("TRAVERSE ON ")
	case PrivilegeWrite:
		ctx.WriteString("WRITE {*} ON ")
	case PrivilegeRead:
		ctx.WriteString("READ ")
		ctx.FormatNode(p.Resource)
		ctx.WriteString(" ON ")
	case PrivilegeMatch:
		ctx.WriteString("MATCH ")
		ctx.FormatNode(p.Resource)
		ctx.WriteString(" ON ")
	}
	p.Scope.format(ctx, "GRAPH")
	if p.Qualifier != nil {
		ctx.WriteByte(' ')
		ctx.FormatNode(p.Qualifier)
	}
}

// GrantPrivilege represents a GRANT <privilege> TO <roles> statement.
type GrantPrivilege struct {
	Privilege Privilege
	Roles     NameList
}

// Format implements the NodeFormatter interface.
func (node *GrantPrivilege) Format(ctx *FmtCtx) {
	ctx.WriteString("GRANT ")
	ctx.FormatNode(&node.Privilege)
	ctx.WriteString(" TO ")
	ctx.FormatNode(&node.Roles)
}

// StatementTag implements the Statement interface.
func (*GrantPrivilege) StatementTag() string { return "GRANT" }

// AdminCommand implements the AdminStatement interface.
func (*GrantPrivilege) AdminCommand() {}

// DenyPrivilege represents a DENY <privilege> TO <roles> statement.
type DenyPrivilege struct {
	Privilege Privilege
	Roles     NameList
}

// Format implements the NodeFormatter interface.
func (node *DenyPrivilege) Format(ctx *FmtCtx) {
	ctx.WriteString("DENY ")
	ctx.FormatNode(&node.Privilege)
	ctx.WriteString(" TO ")
	ctx.FormatNode(&node.Roles)
}

// StatementTag implements the Statement interface.
func (*DenyPrivilege) StatementTag() string { return "DENY" }

// AdminCommand implements the AdminStatement interface.
func (*DenyPrivilege) AdminCommand() {}

// RevokePrivilege represents a REVOKE GRANT|DENY <privilege> FROM
// <roles> statement.
type RevokePrivilege struct {
	Privilege Privilege
	Roles     NameList
	Revoke    RevokeType
}

// Format implements the NodeFormatter interface.
func (node *RevokePrivilege) Format(ctx *FmtCtx) {
	ctx.WriteString("REVOKE ")
	ctx.WriteString(node.Revoke.String())
	ctx.WriteByte(' ')
	ctx.FormatNode(&node.Privilege)
	ctx.WriteString(" FROM ")
	ctx.FormatNode(&node.Roles)
}

// StatementTag implements the Statement interface.
func (*RevokePrivilege) StatementTag() string { return "REVOKE" }

// AdminCommand implements the AdminStatement interface.
func (*RevokePrivilege) AdminCommand() {}
