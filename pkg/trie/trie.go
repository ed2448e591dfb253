package trie

import "unicode/utf8"

// Trie owns the root node and exposes word-level operations over the tree.
type Trie struct {
	root *Node
	size int
}

// New creates an empty trie with a sentinel root.
func New() *Trie {
	return &Trie{root: newNode(0)}
}

// Root returns the sentinel root node. It never terminates a word.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// Insert stores word, creating one node per missing unit along its path.
// Empty words are never stored. It reports whether word was not already present;
// inserting the same word again leaves the tree unchanged.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}

	node := t.root
	for _, r := range word {
		node = node.addChildIfNotExist(r)
	}

	if node.end {
		return false
	}
	node.end = true
	t.size++
	return true
}

// Find returns the node spelling word, whether it is a stored word or only a
// prefix of one. The empty word maps to the root. Returns nil if no such path exists.
func (t *Trie) Find(word string) *Node {
	node := t.root
	for _, r := range word {
		if node = node.Child(r); node == nil {
			return nil
		}
	}
	return node
}

// Contains reports whether word itself was inserted.
// Reaching a node is not enough: "John" is not contained when only "John Doe" was inserted.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	node := t.Find(word)
	return node != nil && node.end
}

// Remove deletes word and reports whether it was stored.
//
// If longer words continue past the word's node, only its end flag is cleared.
// Otherwise the node is detached from its parent, and so is every ancestor left
// behind with no children that does not terminate a word itself. Sibling
// branches are never touched.
func (t *Trie) Remove(word string) bool {
	if word == "" {
		return false
	}

	node := t.Find(word)
	if node == nil || !node.end {
		return false
	}

	node.end = false
	t.size--

	if !node.IsLeaf() {
		return true
	}

	// walk up while the branch below is dead, then cut it at the top
	top := node
	node.ForEachStepUp(func(n *Node) {
		top = n
	}, func(n *Node) bool {
		return n == node || (!n.end && n.ChildCount() == 1)
	})
	top.detach()

	return true
}

// StartsWith returns every stored word beginning with prefix, in preorder:
// a word comes before the words that extend it, and siblings follow the order
// their first unit was inserted. The empty prefix matches every word.
// The result is empty, never nil, when nothing matches.
func (t *Trie) StartsWith(prefix string) []string {
	words := []string{}

	start := t.Find(prefix)
	if start == nil {
		return words
	}

	collect(start, []byte(start.Word()), &words)
	return words
}

// Words returns all stored words in traversal order.
func (t *Trie) Words() []string {
	return t.StartsWith("")
}

// collect appends the words of node and its subtree to words, in preorder.
// word holds the encoded word of node.
func collect(node *Node, word []byte, words *[]string) {
	if node.end {
		*words = append(*words, string(word))
	}
	node.ForEachChild(func(child *Node) {
		collect(child, utf8.AppendRune(word, child.key), words)
	})
}
