package document

// FindNode searches the tree rooted at root for a node with the given id,
// pre-order, and returns the first match or nil.
func FindNode(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := FindNode(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindAnywhere searches the main tree and all floating topics for a node.
func (m *MindMap) FindAnywhere(id string) *Node {
	if found := FindNode(m.Root, id); found != nil {
		return found
	}
	for _, topic := range m.FloatingTopics {
		if found := FindNode(topic, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the parent of the node with the given id within the
// tree rooted at root, or nil if id is the root or absent.
func FindParent(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	for _, child := range root.Children {
		if child.ID == id {
			return root
		}
		if found := FindParent(child, id); found != nil {
			return found
		}
	}
	return nil
}

// RemoveChild detaches the child with the given id from parent and returns
// it, or nil if it is not a direct child.
func RemoveChild(parent *Node, id string) *Node {
	for i, child := range parent.Children {
		if child.ID == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return child
		}
	}
	return nil
}

// InsertChild inserts child under parent at the given index. An out-of-range
// index appends.
func InsertChild(parent *Node, child *Node, index int) {
	if index < 0 || index > len(parent.Children) {
		parent.Children = append(parent.Children, child)
		return
	}
	children := make([]*Node, 0, len(parent.Children)+1)
	children = append(children, parent.Children[:index]...)
	children = append(children, child)
	children = append(children, parent.Children[index:]...)
	parent.Children = children
}

// CountNodes returns the number of nodes in the tree rooted at root.
func CountNodes(root *Node) int {
	if root == nil {
		return 0
	}
	count := 1
	for _, child := range root.Children {
		count += CountNodes(child)
	}
	return count
}
