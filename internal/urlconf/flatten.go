package urlconf

// Flatten walks the route table depth first and returns one RouteEntry per
// leaf, in declaration order. Every entry's pattern is prefix followed by the
// prefixes of all enclosing sub-tables and the leaf's own pattern.
// Nodes that are neither sub-tables nor leaves are skipped.
func Flatten(nodes []Node, prefix string) []RouteEntry {
	var entries []RouteEntry
	for _, n := range nodes {
		switch n := n.(type) {
		case *SubTable:
			entries = append(entries, Flatten(n.Children, prefix+n.Prefix)...)
		case *Leaf:
			entries = append(entries, RouteEntry{
				Pattern:     prefix + n.Pattern,
				HandlerName: n.Handler.Name,
				ModuleName:  n.Handler.Module,
			})
		}
	}
	return entries
}
