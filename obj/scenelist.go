package obj

// SceneList is the plain ordered Scene used by the game and the editor
// frontend. Add ignores duplicates, Remove ignores absentees.
type SceneList struct {
	nodes []any
}

func NewSceneList() *SceneList {
	return &SceneList{}
}

func (s *SceneList) Add(node any) {
	if s == nil || node == nil {
		return
	}
	for _, n := range s.nodes {
		if n == node {
			return
		}
	}
	s.nodes = append(s.nodes, node)
}

func (s *SceneList) Remove(node any) {
	if s == nil || node == nil {
		return
	}
	for i, n := range s.nodes {
		if n == node {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

func (s *SceneList) Nodes() []any {
	if s == nil {
		return nil
	}
	return s.nodes
}

func (s *SceneList) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}
