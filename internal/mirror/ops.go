package mirror

// The operations below are persistent: they never modify the input tree.
// Nodes on the path from the root to the touched node are cloned; every
// other subtree is shared between the old and new trees.

// FindByID returns the node with the given kind and id, or nil
func (t Tree) FindByID(kind Kind, id int64) *Node {
	for _, n := range t {
		if found := findIn(n, kind, id); found != nil {
			return found
		}
	}
	return nil
}

func findIn(n *Node, kind Kind, id int64) *Node {
	if n.Kind == kind && n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := findIn(child, kind, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the folder node containing the given node, or nil
// when the node sits at root level or does not exist.
func (t Tree) FindParent(kind Kind, id int64) *Node {
	for _, n := range t {
		if found := findParentIn(n, kind, id); found != nil {
			return found
		}
	}
	return nil
}

func findParentIn(n *Node, kind Kind, id int64) *Node {
	for _, child := range n.Children {
		if child.Kind == kind && child.ID == id {
			return n
		}
		if found := findParentIn(child, kind, id); found != nil {
			return found
		}
	}
	return nil
}

// IsDescendant reports whether candidate lies inside the subtree of the
// folder with the given id.
func (t Tree) IsDescendant(folderID int64, candidateKind Kind, candidateID int64) bool {
	folder := t.FindByID(KindFolder, folderID)
	if folder == nil {
		return false
	}
	for _, child := range folder.Children {
		if findIn(child, candidateKind, candidateID) != nil {
			return true
		}
	}
	return false
}

// Insert places node under the folder with parentID (nil for root level)
// and returns the new tree. The tree is returned unchanged when the
// parent does not exist.
func (t Tree) Insert(node *Node, parentID *int64) Tree {
	if parentID == nil {
		next := append(Tree{}, t...)
		next = append(next, node)
		sortLevel(next)
		return next
	}

	next, inserted := insertBelow(t, node, *parentID)
	if !inserted {
		return t
	}
	return next
}

func insertBelow(level []*Node, node *Node, parentID int64) ([]*Node, bool) {
	for i, n := range level {
		if n.Kind == KindFolder && n.ID == parentID {
			clone := *n
			clone.Children = append(append([]*Node{}, n.Children...), node)
			sortLevel(clone.Children)
			return replaceAt(level, i, &clone), true
		}
		if children, ok := insertBelow(n.Children, node, parentID); ok {
			clone := *n
			clone.Children = children
			return replaceAt(level, i, &clone), true
		}
	}
	return level, false
}

// Remove detaches the node with the given kind and id and returns the
// new tree plus the removed node (nil when absent).
func (t Tree) Remove(kind Kind, id int64) (Tree, *Node) {
	next, removed := removeFrom(t, kind, id)
	if removed == nil {
		return t, nil
	}
	return next, removed
}

func removeFrom(level []*Node, kind Kind, id int64) ([]*Node, *Node) {
	for i, n := range level {
		if n.Kind == kind && n.ID == id {
			next := make([]*Node, 0, len(level)-1)
			next = append(next, level[:i]...)
			next = append(next, level[i+1:]...)
			return next, n
		}
		if children, removed := removeFrom(n.Children, kind, id); removed != nil {
			clone := *n
			clone.Children = children
			return replaceAt(level, i, &clone), removed
		}
	}
	return level, nil
}

// Rename sets the node's name and resorts its sibling level
func (t Tree) Rename(kind Kind, id int64, name string) Tree {
	next, renamed := renameIn(t, kind, id, name)
	if !renamed {
		return t
	}
	return next
}

func renameIn(level []*Node, kind Kind, id int64, name string) ([]*Node, bool) {
	for i, n := range level {
		if n.Kind == kind && n.ID == id {
			clone := *n
			clone.Name = name
			next := replaceAt(level, i, &clone)
			sortLevel(next)
			return next, true
		}
		if children, ok := renameIn(n.Children, kind, id, name); ok {
			clone := *n
			clone.Children = children
			return replaceAt(level, i, &clone), true
		}
	}
	return level, false
}

// UpdateDocument sets a document's name and text from a confirmed row
// and resorts its sibling level.
func (t Tree) UpdateDocument(id int64, name, text string) Tree {
	next, updated := updateDocIn(t, id, name, text)
	if !updated {
		return t
	}
	return next
}

func updateDocIn(level []*Node, id int64, name, text string) ([]*Node, bool) {
	for i, n := range level {
		if n.Kind == KindDocument && n.ID == id {
			clone := *n
			clone.Name = name
			clone.Text = text
			next := replaceAt(level, i, &clone)
			sortLevel(next)
			return next, true
		}
		if children, ok := updateDocIn(n.Children, id, name, text); ok {
			clone := *n
			clone.Children = children
			return replaceAt(level, i, &clone), true
		}
	}
	return level, false
}

// Move detaches a node and reinserts it under the new parent (nil for
// root level). The tree is returned unchanged when the node is missing,
// the target folder is missing, or the move would place a folder inside
// its own subtree. The server rejects those moves too; checking locally
// just avoids a doomed round trip.
func (t Tree) Move(kind Kind, id int64, newParentID *int64) Tree {
	if kind == KindFolder && newParentID != nil {
		if *newParentID == id || t.IsDescendant(id, KindFolder, *newParentID) {
			return t
		}
	}
	if newParentID != nil && t.FindByID(KindFolder, *newParentID) == nil {
		return t
	}

	detached, node := t.Remove(kind, id)
	if node == nil {
		return t
	}
	return detached.Insert(node, newParentID)
}

func replaceAt(level []*Node, i int, n *Node) []*Node {
	next := make([]*Node, len(level))
	copy(next, level)
	next[i] = n
	return next
}
