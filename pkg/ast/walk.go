package ast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(b *Block) error

// Walk visits every block of the document in order.
// If fn returns a non-nil error the walk stops immediately and returns it.
func Walk(doc *Document, fn WalkFunc) error {
	if doc == nil {
		return nil
	}
	for _, block := range doc.Blocks {
		if err := fn(block); err != nil {
			return err
		}
	}
	return nil
}

// ItemFunc is the function signature for WalkItems callbacks.
// depth is 0 for root items and grows by 1 per nesting level.
type ItemFunc func(item *ListItem, depth int) error

// WalkItems visits a list-item tree in document order, parents before
// children. It uses an explicit stack rather than recursion so adversarial
// nesting depth cannot exhaust the call stack.
func WalkItems(items []*ListItem, fn ItemFunc) error {
	type frame struct {
		item  *ListItem
		depth int
	}

	// Push roots in reverse so the stack pops them in document order.
	stack := make([]frame, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, frame{items[i], 0})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(top.item, top.depth); err != nil {
			return err
		}

		for i := len(top.item.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.item.Children[i], top.depth + 1})
		}
	}

	return nil
}

// FindByKind returns all blocks of the given kind in document order.
func FindByKind(doc *Document, kind BlockKind) []*Block {
	var result []*Block

	//nolint:errcheck,revive // the callback never returns an error
	Walk(doc, func(b *Block) error {
		if b.Kind == kind {
			result = append(result, b)
		}
		return nil
	})

	return result
}

// CountItems returns the total number of items in a list-item tree.
func CountItems(items []*ListItem) int {
	count := 0

	//nolint:errcheck,revive // the callback never returns an error
	WalkItems(items, func(*ListItem, int) error {
		count++
		return nil
	})

	return count
}
