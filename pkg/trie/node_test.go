package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddChildIfNotExist verifies that a child is created once and linked to its parent.
func TestAddChildIfNotExist(t *testing.T) {
	root := newNode(0)
	child := root.addChildIfNotExist('a')

	assert.Equal(t, root, child.Parent(), "Child's parent should be set correctly")
	assert.Equal(t, 'a', child.Key())
	assert.Equal(t, 1, child.Depth(), "Child's depth should increment by 1 from the parent")
	assert.Same(t, child, root.addChildIfNotExist('a'), "Should return the existing child")
	assert.Equal(t, 1, root.ChildCount())
}

// TestChild verifies retrieving children by unit.
func TestChild(t *testing.T) {
	root := newNode(0)
	child := root.addChildIfNotExist('x')

	assert.Same(t, child, root.Child('x'))
	assert.Nil(t, root.Child('y'), "Should return nil for a missing unit")
}

// TestWord checks that a node's word is rebuilt from root to node.
func TestWord(t *testing.T) {
	tr := newTrieWith("John Doe")

	node := tr.Find("John Doe")
	require.NotNil(t, node)
	assert.Equal(t, "John Doe", node.Word())
	assert.Equal(t, "John", tr.Find("John").Word(), "Inner nodes spell their prefix")
	assert.Equal(t, "", tr.Root().Word())
}

// TestForEachChild checks that children are visited in insertion order.
func TestForEachChild(t *testing.T) {
	root := newNode(0)
	for _, r := range "zxy" {
		root.addChildIfNotExist(r)
	}

	var visited []rune
	root.ForEachChild(func(child *Node) {
		visited = append(visited, child.Key())
	})
	assert.Equal(t, []rune("zxy"), visited)
}

// TestForEachStepDown verifies the preorder walk and its while guard.
func TestForEachStepDown(t *testing.T) {
	tr := newTrieWith("ab", "ac", "b")

	visited := ""
	tr.Root().ForEachStepDown(func(n *Node) {
		visited += string(n.Key())
	}, nil)
	assert.Equal(t, "abcb", visited)

	visited = ""
	tr.Root().ForEachStepDown(func(n *Node) {
		visited += string(n.Key())
	}, func(n *Node) bool {
		return n.Depth() < 1
	})
	assert.Equal(t, "ab", visited, "Nodes below depth 1 should not be expanded")
}

// TestForEachStepUp verifies that the walk goes from node to root, excluding the root.
func TestForEachStepUp(t *testing.T) {
	tr := newTrieWith("abc")

	visited := ""
	tr.Find("abc").ForEachStepUp(func(n *Node) {
		visited += string(n.Key())
	}, nil)
	assert.Equal(t, "cba", visited)
}

// TestDetach checks that only the detached entry leaves its parent.
func TestDetach(t *testing.T) {
	root := newNode(0)
	a := root.addChildIfNotExist('a')
	root.addChildIfNotExist('b')
	root.addChildIfNotExist('c')

	a.detach()

	assert.Nil(t, root.Child('a'))
	assert.Nil(t, a.Parent())
	assert.Equal(t, 2, root.ChildCount())

	var visited []rune
	root.ForEachChild(func(child *Node) {
		visited = append(visited, child.Key())
	})
	assert.Equal(t, []rune("bc"), visited, "Remaining siblings should keep their order")

	assert.Panics(t, func() {
		root.detach()
	}, "Detaching the root should panic")
}
