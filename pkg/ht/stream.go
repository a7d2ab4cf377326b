package ht

import "io"

// Stream is a pull iterator over rendered HTML fragments. It produces
// the same bytes as Render in the same order without assembling one
// large string and without touching any node's render cache. A Stream
// is single-pass: once exhausted it stays exhausted, and every call to
// (*Element).Stream starts an independent traversal.
//
//	s := node.Stream()
//	for s.Next() {
//	    w.WriteString(s.Fragment())
//	}
//	if err := s.Err(); err != nil { ... }
type Stream struct {
	stack []streamItem
	frag  string
	err   error
}

// streamItem is one pending unit of work: a literal fragment to emit, or
// an element still to be expanded.
type streamItem struct {
	lit string
	el  *Element
}

// Stream begins a lazy traversal of the element.
func (e *Element) Stream() *Stream {
	s := &Stream{}
	if e != nil {
		s.stack = []streamItem{{el: e}}
	}
	return s
}

// Next advances to the next non-empty fragment. It returns false when
// the traversal is exhausted or has failed; check Err afterwards.
func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}
	for len(s.stack) > 0 {
		it := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if it.el == nil {
			if it.lit == "" {
				continue
			}
			s.frag = it.lit
			return true
		}

		e := it.el
		if e.err != nil {
			s.err = e.err
			s.frag = ""
			return false
		}
		if e.tag == "" {
			s.pushChildren(e.children)
			continue
		}

		// The attribute block is assembled before the open tag is
		// yielded, so an element failing the URL check contributes no
		// fragment at all.
		attrs, err := e.attrBlock()
		if err != nil {
			s.err = err
			s.frag = ""
			return false
		}
		open := "<" + e.tag + attrs + ">"
		if IsVoidElement(e.tag) {
			s.frag = open
			return true
		}
		s.stack = append(s.stack, streamItem{lit: "</" + e.tag + ">"})
		s.pushChildren(e.children)
		s.frag = open
		return true
	}
	s.frag = ""
	return false
}

// pushChildren schedules a child sequence in reverse so the stack pops
// it in document order.
func (s *Stream) pushChildren(items []Child) {
	for i := len(items) - 1; i >= 0; i-- {
		c := items[i]
		switch c.Kind {
		case KindText:
			s.stack = append(s.stack, streamItem{lit: Escape(c.Text)})
		case KindRaw:
			s.stack = append(s.stack, streamItem{lit: c.Text})
		case KindNode:
			if c.Node != nil {
				s.stack = append(s.stack, streamItem{el: c.Node})
			}
		}
	}
}

// Fragment returns the fragment produced by the last successful Next.
func (s *Stream) Fragment() string {
	return s.frag
}

// Err returns the first error encountered by the traversal, if any.
func (s *Stream) Err() error {
	return s.err
}

// WriteTo drains a fresh stream into w, implementing io.WriterTo. Bytes
// already written stay written if the traversal fails partway; callers
// that need all-or-nothing output should use Render instead.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	s := e.Stream()
	var n int64
	for s.Next() {
		m, err := io.WriteString(w, s.Fragment())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, s.Err()
}
