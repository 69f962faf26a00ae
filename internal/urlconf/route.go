package urlconf

// Handler identifies the callable bound to a leaf route.
type Handler struct {
	// Name is the handler's declared name, e.g. "home_view".
	Name string `yaml:"name"`

	// Module is the dotted name of the declaring module, e.g. "core.views".
	Module string `yaml:"module"`
}

// Qualified returns "module.name".
func (h Handler) Qualified() string {
	return h.Module + "." + h.Name
}

// Node is one element of a route table: *SubTable, *Leaf or *Unrouted.
type Node interface {
	isNode()
}

// SubTable groups child routes under a common prefix.
type SubTable struct {
	// Prefix is the pattern fragment shared by all children.
	Prefix string

	// Children are the nested routes in declaration order.
	Children []Node

	// Include is the URLconf module the children were loaded from,
	// or empty for inline patterns.
	Include string
}

// Leaf is a route bound directly to a handler.
type Leaf struct {
	// Pattern is the route's own pattern fragment, kept as an opaque string.
	Pattern string

	// Handler is the bound callable.
	Handler Handler

	// Name is the optional route name used for reversing.
	Name string
}

// Unrouted is a route table entry with neither children nor a handler.
// Flatten skips it.
type Unrouted struct {
	Pattern string
}

func (*SubTable) isNode() {}
func (*Leaf) isNode()     {}
func (*Unrouted) isNode() {}

// RouteEntry is a leaf route with its full pattern.
type RouteEntry struct {
	// Pattern is every enclosing prefix followed by the leaf pattern.
	Pattern string

	// HandlerName is the leaf handler's declared name.
	HandlerName string

	// ModuleName is the dotted name of the handler's module.
	ModuleName string
}

// View returns the qualified handler name, "module.handler".
func (e RouteEntry) View() string {
	return Handler{Name: e.HandlerName, Module: e.ModuleName}.Qualified()
}
