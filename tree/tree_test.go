package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	id       int
	children []*testNode
}

func (n *testNode) NodeID() int                 { return n.id }
func (n *testNode) ChildNodes() []*testNode     { return n.children }
func (n *testNode) SetChildNodes(c []*testNode) { n.children = c }

func node(id int, children ...*testNode) *testNode {
	return &testNode{id: id, children: children}
}

func TestNextID(t *testing.T) {
	t.Run("empty forest starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, NextID([]*testNode{}))
	})

	t.Run("max over all depths plus one", func(t *testing.T) {
		roots := []*testNode{
			node(1, node(2)),
			node(5),
		}
		assert.Equal(t, 6, NextID(roots))
	})

	t.Run("deleting the max node reissues its id", func(t *testing.T) {
		roots := []*testNode{node(1), node(2), node(5)}
		assert.Equal(t, 6, NextID(roots))

		roots, ok := Remove(roots, 5)
		require.True(t, ok)
		assert.Equal(t, 3, NextID(roots))
	})
}

func TestFind(t *testing.T) {
	roots := []*testNode{
		node(1, node(2, node(3))),
		node(4),
	}

	got, ok := Find(roots, 3)
	require.True(t, ok)
	assert.Equal(t, 3, got.id)

	_, ok = Find(roots, 99)
	assert.False(t, ok)
}

func TestInsert(t *testing.T) {
	t.Run("parent zero appends a root", func(t *testing.T) {
		roots := []*testNode{node(1)}
		roots, ok := Insert(roots, 0, node(2))
		require.True(t, ok)
		assert.Len(t, roots, 2)
	})

	t.Run("attaches under a nested parent", func(t *testing.T) {
		roots := []*testNode{node(1, node(2))}
		roots, ok := Insert(roots, 2, node(3))
		require.True(t, ok)
		assert.Equal(t, 3, roots[0].children[0].children[0].id)
	})

	t.Run("unknown parent fails", func(t *testing.T) {
		roots := []*testNode{node(1)}
		_, ok := Insert(roots, 42, node(2))
		assert.False(t, ok)
	})
}

func TestRemoveCascades(t *testing.T) {
	roots := []*testNode{
		node(1,
			node(2, node(3), node(4)),
			node(5),
		),
		node(6),
	}
	require.Equal(t, 6, Count(roots))

	roots, ok := Remove(roots, 2)
	require.True(t, ok)

	// 2 and its whole subtree are gone, nothing orphaned
	assert.Equal(t, 3, Count(roots))
	for _, id := range []int{2, 3, 4} {
		_, found := Find(roots, id)
		assert.False(t, found, "node %d should be gone", id)
	}
	_, found := Find(roots, 5)
	assert.True(t, found)
}

func TestRemoveRoot(t *testing.T) {
	roots := []*testNode{node(1, node(2)), node(3)}

	roots, ok := Remove(roots, 1)
	require.True(t, ok)
	assert.Equal(t, 1, Count(roots))
	assert.Equal(t, 3, roots[0].id)
}

func TestRemoveMissing(t *testing.T) {
	roots := []*testNode{node(1)}
	_, ok := Remove(roots, 9)
	assert.False(t, ok)
}

func TestMaxDepth(t *testing.T) {
	assert.Equal(t, 0, MaxDepth([]*testNode{}))
	assert.Equal(t, 1, MaxDepth([]*testNode{node(1)}))
	assert.Equal(t, 3, MaxDepth([]*testNode{node(1, node(2, node(3)))}))
}
