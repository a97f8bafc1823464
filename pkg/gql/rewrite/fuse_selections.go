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
	"github.com/sylvadb/sylva/pkg/gql/ast"
	"github.com/sylvadb/sylva/pkg/gql/plan"
)

// FuseSelections merges two directly nested Selection nodes whose
// predicates are both top-level conjunctions into a single Selection
// attached to the inner node's source. The fused predicate keeps the
// outer conjuncts before the inner ones; order is significant for
// short-circuit evaluation downstream. The fused node keeps the outer
// node's ID so existing references to it remain valid.
//
// The rule does not re-fuse the result with a further nested Selection;
// that happens on the next fixpoint pass.
func FuseSelections(n plan.Node) (plan.Node, bool) {
	outer, ok := n.(*plan.Selection)
	if !ok {
		return nil, false
	}
	outerAnds, ok := outer.Predicate.(*ast.Ands)
	if !ok {
		return nil, false
	}
	inner, ok := outer.Source().(*plan.Selection)
	if !ok {
		return nil, false
	}
	innerAnds, ok := inner.Predicate.(*ast.Ands)
	if !ok {
		return nil, false
	}
	fused := make([]ast.Expr, 0, len(outerAnds.Exprs)+len(innerAnds.Exprs))
	fused = append(fused, outerAnds.Exprs...)
	fused = append(fused, innerAnds.Exprs...)
	return plan.NewSelection(outer.ID(), &ast.Ands{Exprs: fused}, inner.Source()), true
}
