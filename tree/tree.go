// Package tree implements the shallow labeled trees used for product
// categories and navigation menus. Both trees share the same rules: integer
// ids are unique across the whole tree, the next id is max(id)+1 over every
// node, and deleting a node removes its entire subtree.
package tree

// Node is implemented by tree node types (pointer receivers expected).
type Node[T any] interface {
	NodeID() int
	ChildNodes() []T
	SetChildNodes([]T)
}

// NextID returns max(id)+1 over every node in the forest, so a freshly
// issued id never collides with a live one. Deleting the highest-numbered
// node lets that id be reissued.
func NextID[T Node[T]](roots []T) int {
	max := 0
	Walk(roots, func(n T, _ int) bool {
		if n.NodeID() > max {
			max = n.NodeID()
		}
		return true
	})
	return max + 1
}

// Walk visits every node depth-first, parents before children. The callback
// returns false to stop the walk early. depth starts at 0 for roots.
func Walk[T Node[T]](roots []T, fn func(n T, depth int) bool) {
	walk(roots, 0, fn)
}

func walk[T Node[T]](nodes []T, depth int, fn func(n T, depth int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.ChildNodes(), depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given id, or the zero value and false.
func Find[T Node[T]](roots []T, id int) (T, bool) {
	var found T
	ok := false
	Walk(roots, func(n T, _ int) bool {
		if n.NodeID() == id {
			found = n
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Insert attaches child under parentID. parentID 0 appends at the root
// level. Returns false when the parent does not exist.
func Insert[T Node[T]](roots []T, parentID int, child T) ([]T, bool) {
	if parentID == 0 {
		return append(roots, child), true
	}
	parent, ok := Find(roots, parentID)
	if !ok {
		return roots, false
	}
	parent.SetChildNodes(append(parent.ChildNodes(), child))
	return roots, true
}

// Remove deletes the node with the given id together with all of its
// descendants. Returns false when no node matched.
func Remove[T Node[T]](roots []T, id int) ([]T, bool) {
	kept := make([]T, 0, len(roots))
	removed := false
	for _, n := range roots {
		if n.NodeID() == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if removed {
		return kept, true
	}
	for _, n := range roots {
		if children, ok := Remove(n.ChildNodes(), id); ok {
			n.SetChildNodes(children)
			return roots, true
		}
	}
	return roots, false
}

// Count returns the number of nodes in the forest.
func Count[T Node[T]](roots []T) int {
	total := 0
	Walk(roots, func(T, int) bool {
		total++
		return true
	})
	return total
}

// MaxDepth returns the deepest level present (1 for a flat list of roots,
// 0 for an empty forest).
func MaxDepth[T Node[T]](roots []T) int {
	deepest := 0
	Walk(roots, func(_ T, depth int) bool {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return true
	})
	return deepest
}
