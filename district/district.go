// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package district counts cyclic components in regional adjacency documents.
//
// The input is a document whose root object maps region keys to objects, each
// of which maps an area identifier to an array of neighbouring area
// identifiers:
//
//	{
//	  "1": {"A": ["B", "C"], "B": ["C"]},
//	  "2": {"X": ["Y"]}
//	}
//
// Each region describes an undirected graph. Count reports, for each region,
// the number of connected components of that graph that contain a cycle, or 1
// if no component does.
package district

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jdoc/ast"
	"github.com/creachadair/jdoc/ast/nav"
	"github.com/creachadair/mds/mapset"
)

// A Result is the count for a single region.
type Result struct {
	Key   string // the region key
	Count int    // number of cyclic components, or 1 if there are none
}

// ParseAndCount parses text as a JSON document and counts its regions.
func ParseAndCount(text string) ([]Result, error) {
	doc, err := ast.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Count(doc)
}

// Count reports the results for each region of doc, ordered by key. Integer
// keys come first in numeric order, followed by the remaining keys in string
// order.
func Count(doc ast.Value) ([]Result, error) {
	root, err := nav.Path[ast.Object](doc)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	out := make([]Result, 0, root.Len())
	for _, key := range root.Keys() {
		g, err := loadGraph(root, key)
		if err != nil {
			return nil, err
		}
		out = append(out, Result{Key: key, Count: max(g.cyclicComponents(), 1)})
	}
	slices.SortFunc(out, func(a, b Result) int { return compareKeys(a.Key, b.Key) })
	return out, nil
}

// Format renders the counts of rs as a comma-separated list, e.g. "1,3,2".
func Format(rs []Result) string {
	ss := make([]string, len(rs))
	for i, r := range rs {
		ss[i] = strconv.Itoa(r.Count)
	}
	return strings.Join(ss, ",")
}

// compareKeys orders integer keys numerically before all other keys, which
// are ordered as strings.
func compareKeys(a, b string) int {
	ia, aerr := strconv.Atoi(a)
	ib, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ia, ib)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return cmp.Compare(a, b)
}

// graph is an undirected graph without parallel edges.
type graph struct {
	adj map[string]mapset.Set[string]
}

func loadGraph(root ast.Object, key string) (*graph, error) {
	region, err := nav.Path[ast.Object](root, key)
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", key, err)
	}
	g := &graph{adj: make(map[string]mapset.Set[string])}
	for _, area := range region.Keys() {
		nbrs, err := nav.Path[ast.Array](region, area)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", key, err)
		}
		g.addVertex(area)
		for i := range nbrs {
			nbr, err := nav.Path[ast.String](nbrs, i)
			if err != nil {
				return nil, fmt.Errorf("region %q area %q: %w", key, area, err)
			}
			g.addEdge(area, string(nbr))
		}
	}
	return g, nil
}

func (g *graph) addVertex(v string) mapset.Set[string] {
	s, ok := g.adj[v]
	if !ok {
		s = mapset.New[string]()
		g.adj[v] = s
	}
	return s
}

func (g *graph) addEdge(u, v string) {
	su, sv := g.addVertex(u), g.addVertex(v)
	su.Add(v)
	sv.Add(u)
}

// cyclicComponents reports the number of connected components of g that
// contain a cycle. A self-loop is a cycle.
func (g *graph) cyclicComponents() int {
	visited := mapset.New[string]()
	var n int
	for v := range g.adj {
		if !visited.Has(v) && g.visit(v, v, visited) {
			n++
		}
	}
	return n
}

// visit performs a depth-first traversal of the component containing v,
// entered from parent (or v itself at the root of the traversal), and reports
// whether it found an edge to a visited vertex other than the parent.
// The whole component is marked visited even when a cycle is found early.
func (g *graph) visit(v, parent string, visited mapset.Set[string]) bool {
	visited.Add(v)
	var cyclic bool
	for w := range g.adj[v] {
		switch {
		case w == v:
			cyclic = true // self-loop
		case w == parent:
			// The tree edge back to the parent.
		case visited.Has(w):
			cyclic = true
		default:
			if g.visit(w, v, visited) {
				cyclic = true
			}
		}
	}
	return cyclic
}
