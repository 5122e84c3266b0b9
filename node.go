package trie

// insert walks one element per call down the trie, creating missing children
// on the way, and assigns value to the node where the key runs out.
func (t *Trie[K, V]) insert(next func() (K, bool), value V) error {
	elem, ok := next()
	if !ok {
		if t.hasValue {
			return ErrKeyPresent
		}
		t.value = value
		t.hasValue = true
		return nil
	}

	child := t.findChild(elem)
	if child == nil {
		child = t.addChild(elem)
	}
	return child.insert(next, value)
}

// search consumes one element per call. When the key is exhausted, or no
// child matches the next element, the current node's value is the result;
// otherwise the matching child's result is returned as is.
func (t *Trie[K, V]) search(next func() (K, bool)) *V {
	elem, ok := next()
	if !ok {
		return t.valueRef()
	}

	if child := t.findChild(elem); child != nil {
		return child.search(next)
	}
	return t.valueRef()
}

// findChild returns the child reached by elem, or nil. Children are scanned
// linearly in insertion order; a node has at most one child per element.
func (t *Trie[K, V]) findChild(elem K) *Trie[K, V] {
	for _, child := range t.children {
		if child.key == elem {
			return child
		}
	}
	return nil
}

// addChild appends a new childless, valueless node for elem.
func (t *Trie[K, V]) addChild(elem K) *Trie[K, V] {
	child := &Trie[K, V]{key: elem}
	t.children = append(t.children, child)
	return child
}

// valueRef returns a pointer to the node's stored value, or nil if no key
// ends at this node.
func (t *Trie[K, V]) valueRef() *V {
	if !t.hasValue {
		return nil
	}
	return &t.value
}
