// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strings"

// TreesStringTree renders a Lisp-style parenthesized tree, e.g.
// `(s (a (a (a x) y) z))` - the format testable property #2 checks.
func TreesStringTree(t Tree, ruleNames []string) string {
	pt, ok := t.(ParseTree)
	if !ok || pt.GetChildCount() == 0 {
		return treesNodeText(t, ruleNames)
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(treesNodeText(t, ruleNames))
	for i := 0; i < pt.GetChildCount(); i++ {
		b.WriteByte(' ')
		b.WriteString(TreesStringTree(pt.GetChild(i), ruleNames))
	}
	b.WriteByte(')')
	return b.String()
}

func treesNodeText(t Tree, ruleNames []string) string {
	if rn, ok := t.(RuleNode); ok {
		rc := rn.GetRuleContext()
		if ruleNames != nil && rc.GetRuleIndex() >= 0 && rc.GetRuleIndex() < len(ruleNames) {
			return ruleNames[rc.GetRuleIndex()]
		}
		return rc.GetText()
	}
	if tn, ok := t.(TerminalNode); ok {
		return tn.GetText()
	}
	return ""
}

// TreesGetChildren returns t's direct children.
func TreesGetChildren(t Tree) []Tree { return t.GetChildren() }

// TreesGetAncestors walks parent links from t up to (and including) the
// root, closest ancestor first.
func TreesGetAncestors(t Tree) []Tree {
	var ancestors []Tree
	p := t.GetParent()
	for p != nil {
		ancestors = append(ancestors, p)
		p = p.GetParent()
	}
	return ancestors
}
