package trie

import "slices"

// Node is a single unit of a stored word and its position in the trie.
type Node struct {
	parent   *Node          // back reference, the parent owns the node
	children map[rune]*Node // children keyed by their unit
	order    []rune         // keys of children in first-insertion order
	key      rune           // the unit, zero for the root
	depth    int            // number of units from the root
	end      bool           // the path from the root spells a stored word
}

func newNode(key rune) *Node {
	return &Node{
		key:      key,
		children: map[rune]*Node{},
	}
}

// Key returns the unit this node represents. The root returns 0.
func (n *Node) Key() rune {
	return n.key
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Depth returns the number of units between the root and this node.
func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// checks if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.order) == 0
}

// IsEndOfWord reports whether the word of this node was inserted and not removed.
func (n *Node) IsEndOfWord() bool {
	return n.end
}

// returns the child for unit r, or nil
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

func (n *Node) ChildCount() int {
	return len(n.order)
}

// Word rebuilds the string this node terminates by walking up to the root.
// The root spells the empty string.
func (n *Node) Word() string {
	units := make([]rune, 0, n.depth)
	n.ForEachStepUp(func(node *Node) {
		units = append(units, node.key)
	}, nil)
	slices.Reverse(units)
	return string(units)
}

// adds a child for unit r if none exists yet.
// return the new added child or the existing one
func (n *Node) addChildIfNotExist(r rune) *Node {
	if child, ok := n.children[r]; ok {
		return child
	}
	child := newNode(r)
	child.parent = n
	child.depth = n.depth + 1
	n.children[r] = child
	n.order = append(n.order, r)
	return child
}

// detach disconnects the node from its parent, together with its subtree.
// Only this node's entry is removed; siblings stay in place.
func (n *Node) detach() {
	if n.IsRoot() {
		panic("[BUG] detach: the root can not be detached")
	}
	p := n.parent
	delete(p.children, n.key)
	if i := slices.Index(p.order, n.key); i >= 0 {
		p.order = slices.Delete(p.order, i, i+1)
	}
	n.parent = nil
}

// applies a function to each child of the node, in insertion order.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	for _, r := range n.order {
		f(n.children[r])
	}
	return n
}

// recursively applies f to each descendant in preorder, a node before its
// children, as long as while holds for the parent being expanded.
// if no condition is needed you can pass nil as while parameter
// will return the original node n
func (n *Node) ForEachStepDown(f func(node *Node), while func(node *Node) bool) *Node {
	n.forEachStepDown(f, while)
	return n
}

func (n *Node) forEachStepDown(f func(node *Node), while func(node *Node) bool) {
	if while != nil && !while(n) {
		return
	}
	n.ForEachChild(func(child *Node) {
		f(child)
		child.forEachStepDown(f, while)
	})
}

// applies a function to the node and each of its ancestors, moving towards
// the root. The root itself is not visited.
// will return the original node n
func (n *Node) ForEachStepUp(f func(node *Node), while func(node *Node) bool) *Node {
	current := n
	for current.parent != nil && (while == nil || while(current)) {
		f(current)
		current = current.parent
	}
	return n
}
