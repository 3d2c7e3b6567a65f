package termlist

import (
	"errors"
	"strings"
)

// orTermList yields the union of the terms of its two children, in ascending
// order, combining statistics when both children are on the same term. When
// one child exhausts, Next hands the other child back as a replacement so
// the exhausted branch drops out of the tree.
type orTermList struct {
	left, right TermList

	// Cached current terms of the children. Both empty until the first
	// Next, which is what makes the first advance take the equal branch
	// and start both children.
	leftCurrent, rightCurrent string
}

func newOr(left, right TermList) *orTermList {
	return &orTermList{left: left, right: right}
}

func (o *orTermList) Next() TermList {
	switch cmp := strings.Compare(o.leftCurrent, o.rightCurrent); {
	case cmp < 0:
		prune(&o.left, o.left.Next())
		if o.left.AtEnd() {
			repl := o.right
			o.right = nil
			return repl
		}
		o.leftCurrent = o.left.Term()
	case cmp > 0:
		prune(&o.right, o.right.Next())
		if o.right.AtEnd() {
			repl := o.left
			o.left = nil
			return repl
		}
		o.rightCurrent = o.right.Term()
	default:
		prune(&o.left, o.left.Next())
		prune(&o.right, o.right.Next())
		if o.left.AtEnd() {
			// The right child may be at its end too; the caller checks
			// the replacement it gets back.
			repl := o.right
			o.right = nil
			return repl
		}
		if o.right.AtEnd() {
			repl := o.left
			o.left = nil
			return repl
		}
		o.leftCurrent = o.left.Term()
		o.rightCurrent = o.right.Term()
	}

	return nil
}

func (o *orTermList) AtEnd() bool {
	// Next replaces this node before either child can be left exhausted,
	// so a union node still in the tree is never at its end.
	return false
}

func (o *orTermList) Term() string {
	if strings.Compare(o.leftCurrent, o.rightCurrent) <= 0 {
		return o.leftCurrent
	}

	return o.rightCurrent
}

func (o *orTermList) Freq() uint32 {
	switch cmp := strings.Compare(o.leftCurrent, o.rightCurrent); {
	case cmp < 0:
		return o.left.Freq()
	case cmp > 0:
		return o.right.Freq()
	default:
		return o.left.Freq() + o.right.Freq()
	}
}

func (o *orTermList) DocFreq() uint32 {
	// On ties both children report the same corpus-wide count.
	if strings.Compare(o.leftCurrent, o.rightCurrent) <= 0 {
		return o.left.DocFreq()
	}

	return o.right.DocFreq()
}

func (o *orTermList) AccumulateStats(s *Stats) {
	cmp := strings.Compare(o.leftCurrent, o.rightCurrent)
	if cmp <= 0 {
		o.left.AccumulateStats(s)
	}

	if cmp >= 0 {
		o.right.AccumulateStats(s)
	}
}

func (o *orTermList) Close() error {
	var errs []error

	if o.left != nil {
		if err := o.left.Close(); err != nil {
			errs = append(errs, err)
		}

		o.left = nil
	}

	if o.right != nil {
		if err := o.right.Close(); err != nil {
			errs = append(errs, err)
		}

		o.right = nil
	}

	return errors.Join(errs...)
}

// prune swaps repl into *slot and releases the node it replaces. A node
// returning a replacement has already detached that replacement from
// itself, so closing the old node only releases its exhausted branch.
func prune(slot *TermList, repl TermList) {
	if repl == nil {
		return
	}

	_ = (*slot).Close()
	*slot = repl
}
