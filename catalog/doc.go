// Package catalog holds the data model the node-finder UI consumes: a
// registry of node templates — the kinds of nodes a user may add to a
// graph — plus a minimal name-based DataType implementation for
// catalogs that only need type-equality compatibility.
//
// A Template knows its display label, its finder categories, and how
// to populate a freshly inserted node with ports. Registry keeps
// templates in registration order and groups them by category; Spawn
// inserts a template's node into a graph.
//
// The finder popup itself (search, filtering, rendering) is not here;
// it is a pure consumer of Registry.
package catalog
