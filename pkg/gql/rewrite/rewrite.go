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

// Package rewrite applies local rewrite rules to plan trees, bottom-up,
// until no rule fires anywhere in the tree.
package rewrite

import (
	"github.com/cockroachdb/errors"

	"github.com/sylvadb/sylva/pkg/gql/plan"
)

// Rule is a partial local rewrite. It returns the replacement node and
// true when it matches, or false to leave the node untouched. A rule
// must not recurse into the tree itself; composition across levels is
// the engine's job.
type Rule func(n plan.Node) (plan.Node, bool)

// BottomUp applies the rule once per node, children first, so the rule
// always sees already-rewritten sources. Subtrees the pass does not
// change are returned as-is, pointer-identical to the input, so
// downstream identity-based bookkeeping stays valid.
func BottomUp(root plan.Node, rule Rule) plan.Node {
	if root == nil {
		return nil
	}
	n := root
	if src := n.Source(); src != nil {
		if newSrc := BottomUp(src, rule); newSrc != src {
			n = n.WithSource(newSrc)
		}
	}
	if replacement, ok := rule(n); ok {
		return replacement
	}
	return n
}

// maxPasses bounds the fixpoint loop. Any well-formed rule set
// converges in at most one pass per node, so hitting the bound means a
// rule keeps producing fresh nodes without reducing the tree.
const maxPasses = 10000

// FixedPoint repeats BottomUp passes until a full pass leaves the tree
// unchanged.
func FixedPoint(root plan.Node, rule Rule) (plan.Node, error) {
	for i := 0; i < maxPasses; i++ {
		next := BottomUp(root, rule)
		if next == root {
			return root, nil
		}
		root = next
	}
	return nil, errors.AssertionFailedf("rewrite did not reach a fixpoint after %d passes", maxPasses)
}
