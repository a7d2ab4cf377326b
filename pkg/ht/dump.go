package ht

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump returns a tree visualization of the element for debugging. The
// output shows structure, not rendered HTML: attribute values appear
// unescaped and unvalidated.
func (e *Element) Dump() string {
	p := treeprint.New()
	dumpNode(p, e)
	return p.String()
}

func dumpNode(p treeprint.Tree, e *Element) {
	if e == nil {
		return
	}
	if len(e.children) == 0 {
		p.AddNode(dumpLabel(e))
		return
	}
	branch := p.AddBranch(dumpLabel(e))
	for _, c := range e.children {
		switch c.Kind {
		case KindText:
			branch.AddNode(fmt.Sprintf("%q", c.Text))
		case KindRaw:
			branch.AddNode("raw " + fmt.Sprintf("%q", c.Text))
		case KindNode:
			dumpNode(branch, c.Node)
		}
	}
}

func dumpLabel(e *Element) string {
	tag := e.tag
	if tag == "" {
		tag = "group"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`=`)
		b.WriteString(fmt.Sprintf("%v", a.Value))
	}
	b.WriteByte('>')
	if e.err != nil {
		b.WriteString(" !" + e.err.Error())
	}
	return b.String()
}
