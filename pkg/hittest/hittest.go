// Package hittest resolves pointer positions to widgets.
//
// Hit priority is the reverse of paint order: among siblings, the
// last-rendered (last in array order) widget is topmost and is probed
// first. Scroll containers shift their descendants' probe coordinates by
// the current scroll offset, so pointers are matched against content-space
// positions.
package hittest

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/widgets"
)

// Result identifies the widget resolved for a pointer position.
type Result struct {
	// ID is the hit widget's identity.
	ID widgets.WidgetID
	// Path lists identities from the root to the hit widget, inclusive.
	Path []widgets.WidgetID
	// Layout is the hit widget's computed layout.
	Layout layout.ComputedLayout
}

// ContainsFunc overrides the default containment test for a widget.
// It receives the probe point already translated into the widget's
// coordinate space.
type ContainsFunc func(w widgets.Widget, point graphics.Offset, cl layout.ComputedLayout) bool

// Options adjusts hit testing behavior.
type Options struct {
	// Contains replaces the default edge-inclusive border-rectangle test.
	// It is trusted verbatim when set.
	Contains ContainsFunc
}

// HitTest resolves the topmost widget under point, which is given in root
// coordinate space. The boolean is false when nothing is hit.
func HitTest(root widgets.Widget, point graphics.Offset, result layout.Result) (Result, bool) {
	return HitTestWithOptions(root, point, result, Options{})
}

// HitTestWithOptions is HitTest with an injectable containment predicate.
func HitTestWithOptions(root widgets.Widget, point graphics.Offset, result layout.Result, opts Options) (Result, bool) {
	if root == nil {
		return Result{}, false
	}
	return hitNode(root, point, result, graphics.Offset{}, nil, opts)
}

// hitNode recursively probes w. scroll is the accumulated scroll offset of
// all enclosing scroll containers; path holds the identities of enclosing
// widgets (shared backing array, copied on materialization).
func hitNode(w widgets.Widget, point graphics.Offset, result layout.Result, scroll graphics.Offset, path []widgets.WidgetID, opts Options) (Result, bool) {
	cl, ok := result.Lookup(w.Identity())
	if !ok {
		// Absent from the layout pass: prune the subtree.
		return Result{}, false
	}

	// Express the pointer in this widget's space. Scroll ancestors moved
	// the content up/left by their offset, so probing moves down/right.
	local := point.Add(scroll)
	if !contains(w, local, cl, opts) {
		return Result{}, false
	}

	path = append(path, w.Identity())
	childScroll := scroll
	if sc, isScroll := w.(widgets.Scroll); isScroll {
		childScroll = childScroll.Add(sc.State.Offset())
	}

	children := widgets.ChildrenOf(w)
	for i := len(children) - 1; i >= 0; i-- {
		if hit, ok := hitNode(children[i], point, result, childScroll, path, opts); ok {
			return hit, true
		}
	}

	return Result{
		ID:     w.Identity(),
		Path:   clonePath(path),
		Layout: cl,
	}, true
}

// HitTestAll collects every widget along the hit path whose bounds contain
// the point, ordered topmost-first. The first element, if any, matches the
// result of HitTest for the same point.
func HitTestAll(root widgets.Widget, point graphics.Offset, result layout.Result) []Result {
	return HitTestAllWithOptions(root, point, result, Options{})
}

// HitTestAllWithOptions is HitTestAll with an injectable containment predicate.
func HitTestAllWithOptions(root widgets.Widget, point graphics.Offset, result layout.Result, opts Options) []Result {
	if root == nil {
		return nil
	}
	return hitNodeAll(root, point, result, graphics.Offset{}, nil, opts)
}

func hitNodeAll(w widgets.Widget, point graphics.Offset, result layout.Result, scroll graphics.Offset, path []widgets.WidgetID, opts Options) []Result {
	cl, ok := result.Lookup(w.Identity())
	if !ok {
		return nil
	}
	local := point.Add(scroll)
	if !contains(w, local, cl, opts) {
		return nil
	}

	path = append(path, w.Identity())
	childScroll := scroll
	if sc, isScroll := w.(widgets.Scroll); isScroll {
		childScroll = childScroll.Add(sc.State.Offset())
	}

	var hits []Result
	children := widgets.ChildrenOf(w)
	for i := len(children) - 1; i >= 0; i-- {
		hits = append(hits, hitNodeAll(children[i], point, result, childScroll, path, opts)...)
	}
	return append(hits, Result{
		ID:     w.Identity(),
		Path:   clonePath(path),
		Layout: cl,
	})
}

// PathTo searches the tree in pre-order for the target identity and
// returns the root-to-target path. With colliding identities the first
// match wins; see the WidgetID uniqueness obligation.
func PathTo(root widgets.Widget, target widgets.WidgetID) ([]widgets.WidgetID, bool) {
	if root == nil {
		return nil, false
	}
	return pathTo(root, target, nil)
}

func pathTo(w widgets.Widget, target widgets.WidgetID, path []widgets.WidgetID) ([]widgets.WidgetID, bool) {
	path = append(path, w.Identity())
	if w.Identity() == target {
		return clonePath(path), true
	}
	for _, child := range widgets.ChildrenOf(w) {
		if found, ok := pathTo(child, target, path); ok {
			return found, true
		}
	}
	return nil, false
}

func contains(w widgets.Widget, local graphics.Offset, cl layout.ComputedLayout, opts Options) bool {
	if opts.Contains != nil {
		return opts.Contains(w, local, cl)
	}
	return cl.Border.Contains(local)
}

func clonePath(path []widgets.WidgetID) []widgets.WidgetID {
	out := make([]widgets.WidgetID, len(path))
	copy(out, path)
	return out
}
