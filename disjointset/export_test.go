package disjointset

// ParentOf exposes the raw parent link of x to white-box tests in disjointset_test.
func (f *Forest) ParentOf(x int) int { return f.parent[x] }
