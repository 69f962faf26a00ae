// Package urlconf models a site's URL route table and flattens it.
//
// A route table is a tree: every node is either a SubTable (a prefix with
// nested routes, produced by include or inline patterns) or a Leaf bound to
// a Handler. Route tables are stored as YAML URLconf modules:
//
//	urlpatterns:
//	  - path: ""
//	    view: core.views.home_view
//	    name: home
//	  - path: "vendor/"
//	    include: vendor.urls
//	  - path: "cart/"
//	    patterns:
//	      - path: "checkout/"
//	        handler: {module: cart.views, name: checkout_view}
//
// Handlers are plain {name, module} values written by the route table's
// author; nothing is discovered by reflection.
package urlconf
