// ## Overview
// Package trie implements a prefix tree of strings.
// Each node holds one unit (a rune) of a stored word, a back reference to its
// parent and its children in the order they were first added. A node marked
// as end of word terminates a stored word; every other node is only a prefix.
//
// ## Example usage:
//
//	t := trie.New()
//	t.Insert("John")
//	t.Insert("John Doe")
//	t.Insert("Jane Doe")
//
//	fmt.Println(t.Contains("John"))   // true
//	fmt.Println(t.Contains("Doe"))    // false, only a path inside "John Doe"
//	fmt.Println(t.StartsWith("Jo"))   // [John John Doe]
//
//	t.Remove("John Doe")
//	fmt.Println(t.Words())            // [John Jane Doe]
//
// A Trie is not safe for concurrent use. Callers that share one across
// goroutines must guard the whole tree with a single lock.
package trie
