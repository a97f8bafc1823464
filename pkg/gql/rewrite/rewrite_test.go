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

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

func eq(name, val string) ast.Expr {
	return &ast.Equals{Left: &ast.Variable{Name: ast.Name(name)}, Right: &ast.StrVal{Value: val}}
}

func conj(exprs ...ast.Expr) *ast.Ands {
	return &ast.Ands{Exprs: exprs}
}

func TestBottomUpIdentityWhenNothingMatches(t *testing.T) {
	g := plan.NewIDGen()
	assert := plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction)
	show := plan.NewShowUsers(g.Next(), assert)

	never := func(plan.Node) (plan.Node, bool) { return nil, false }

	result := BottomUp(show, never)
	require.Same(t, plan.Node(show), result)

	fixed, err := FixedPoint(show, never)
	require.NoError(t, err)
	require.Same(t, plan.Node(show), fixed)
}

func TestBottomUpRebuildsSpine(t *testing.T) {
	g := plan.NewIDGen()
	assert := plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction)
	show := plan.NewShowUsers(g.Next(), assert)
	sel := plan.NewSelection(g.Next(), conj(eq("user", "alice")), show)
	log := plan.NewLogSystemCommand(g.Next(), sel, "irrelevant")

	// Replace the Selection with its source; the nodes above it must be
	// rebuilt with the same IDs, the nodes below returned untouched.
	dropSelections := func(n plan.Node) (plan.Node, bool) {
		if s, ok := n.(*plan.Selection); ok {
			return s.Source(), true
		}
		return nil, false
	}

	result := BottomUp(log, dropSelections)
	require.NotSame(t, plan.Node(log), result)
	require.Equal(t, log.ID(), result.ID())
	require.Equal(t, "LogSystemCommand", result.Op())
	require.Same(t, plan.Node(show), result.Source())
	require.Same(t, plan.Node(assert), result.Source().Source())
}

func TestFuseSelectionsPair(t *testing.T) {
	g := plan.NewIDGen()
	assert := plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction)
	show := plan.NewShowUsers(g.Next(), assert)
	inner := plan.NewSelection(g.Next(), conj(eq("c", "3"), eq("d", "4")), show)
	outer := plan.NewSelection(g.Next(), conj(eq("a", "1"), eq("b", "2")), inner)

	fused, ok := FuseSelections(outer)
	require.True(t, ok)

	sel, isSel := fused.(*plan.Selection)
	require.True(t, isSel)
	// The fused node keeps the outer ID and skips over the inner node.
	require.Equal(t, outer.ID(), sel.ID())
	require.Same(t, plan.Node(show), sel.Source())
	// Outer conjuncts come before inner ones.
	require.Equal(t, "a = '1' AND b = '2' AND c = '3' AND d = '4'", ast.AsString(sel.Predicate))
}

func TestFuseSelectionsNoMatch(t *testing.T) {
	g := plan.NewIDGen()
	assert := plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction)
	show := plan.NewShowUsers(g.Next(), assert)

	// Not a selection at all.
	_, ok := FuseSelections(show)
	require.False(t, ok)

	// Selection whose source is not a selection.
	single := plan.NewSelection(g.Next(), conj(eq("a", "1")), show)
	_, ok = FuseSelections(single)
	require.False(t, ok)

	// Outer predicate is not a flattened conjunction.
	inner := plan.NewSelection(g.Next(), conj(eq("b", "2")), show)
	opaque := plan.NewSelection(g.Next(), eq("a", "1"), inner)
	_, ok = FuseSelections(opaque)
	require.False(t, ok)

	// Inner predicate is not a flattened conjunction.
	opaqueInner := plan.NewSelection(g.Next(), eq("b", "2"), show)
	outer := plan.NewSelection(g.Next(), conj(eq("a", "1")), opaqueInner)
	_, ok = FuseSelections(outer)
	require.False(t, ok)
}

func TestFixedPointFusesChain(t *testing.T) {
	g := plan.NewIDGen()
	assert := plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction)
	show := plan.NewShowUsers(g.Next(), assert)
	s1 := plan.NewSelection(g.Next(), conj(eq("e", "5")), show)
	s2 := plan.NewSelection(g.Next(), conj(eq("c", "3"), eq("d", "4")), s1)
	s3 := plan.NewSelection(g.Next(), conj(eq("a", "1"), eq("b", "2")), s2)
	log := plan.NewLogSystemCommand(g.Next(), s3, "irrelevant")

	result, err := FixedPoint(log, FuseSelections)
	require.NoError(t, err)

	flat := plan.Flatten(result)
	require.Len(t, flat, 4)
	require.Equal(t, "LogSystemCommand", flat[0].Op())
	require.Equal(t, "Selection", flat[1].Op())
	require.Equal(t, "ShowUsers", flat[2].Op())
	require.Equal(t, "AssertDbmsAdmin", flat[3].Op())

	sel := flat[1].(*plan.Selection)
	require.Equal(t, s3.ID(), sel.ID())
	require.Equal(t,
		"a = '1' AND b = '2' AND c = '3' AND d = '4' AND e = '5'",
		ast.AsString(sel.Predicate))

	// Running the rewrite again is a no-op, pointer-identical.
	again, err := FixedPoint(result, FuseSelections)
	require.NoError(t, err)
	require.Same(t, result, again)
}

func TestFixedPointDiverging(t *testing.T) {
	g := plan.NewIDGen()
	show := plan.NewShowUsers(g.Next(), plan.NewAssertDbmsAdmin(g.Next(), plan.ShowUserAction))

	// A rule that always returns a fresh node never converges; the
	// engine must fail rather than loop forever.
	churn := func(n plan.Node) (plan.Node, bool) {
		if n.Op() == "ShowUsers" {
			return plan.NewShowUsers(n.ID(), n.Source()), true
		}
		return nil, false
	}

	_, err := FixedPoint(show, churn)
	require.Error(t, err)
}
