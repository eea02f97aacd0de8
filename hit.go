package eventsys

import (
	"cmp"
	"fmt"
	"slices"
)

// Raycaster finds the interactive objects under a pointer. Implementations
// own the geometry; the event system only collects and orders their results.
type Raycaster interface {
	// Raycast appends the hits for ev's position to hits and returns the
	// extended slice.
	Raycast(ev *PointerEvent, hits []HitResult) []HitResult
	// Active reports whether the raycaster takes part in the current pass.
	Active() bool
	// ViewDepth returns the depth of the viewing context the raycaster
	// belongs to, or ok=false when it has none. Larger depths are farther
	// back and lose ties against nearer contexts.
	ViewDepth() (depth float64, ok bool)
	// SortOrderPriority overrides ordering between raycasters (higher wins).
	SortOrderPriority() int
	// RenderOrderPriority overrides ordering between raycasters (higher wins),
	// after SortOrderPriority.
	RenderOrderPriority() int
}

// HitResult is one candidate target for a pointer plus its ordering keys.
type HitResult struct {
	Node   *Node
	Module Raycaster

	Distance     float64 // distance from the pointer origin (closer wins)
	Index        int     // insertion index within the pass (final tie-break)
	Depth        int     // computed depth within the hierarchy (higher is nearer)
	SortingLayer int     // layer id, mapped through a LayerValueFunc
	SortingOrder int     // order within the layer (higher wins)

	WorldPosition  Vec2
	ScreenPosition Vec2
}

// IsValid reports whether the hit names a target.
func (h HitResult) IsValid() bool {
	return h.Node != nil
}

func (h HitResult) String() string {
	if !h.IsValid() {
		return "<none>"
	}
	return fmt.Sprintf("%s (depth %d, layer %d, order %d, distance %.2f, index %d)",
		h.Node.Name, h.Depth, h.SortingLayer, h.SortingOrder, h.Distance, h.Index)
}

// LayerValueFunc maps a sorting layer id to its position in the layer stack.
// Higher values are drawn on top and win ties. A nil LayerValueFunc uses the
// id itself.
type LayerValueFunc func(layerID int) int

// CompareHits orders two hits, nearest / most relevant first. It returns a
// negative number when a sorts before b. Keys are applied in sequence, each
// only when all previous keys tie:
//
//  1. viewing-context depth, when both raycasters define distinct depths
//     (larger loses)
//  2. raycaster sort-order priority (higher wins)
//  3. raycaster render-order priority (higher wins)
//  4. sorting layer value (higher wins)
//  5. sorting order within the layer (higher wins)
//  6. computed depth, only when both nodes share the same root (higher wins)
//  7. distance (lower wins)
//  8. insertion index (lower wins)
func CompareHits(a, b *HitResult, layerValue LayerValueFunc) int {
	ad, aok := viewDepth(a.Module)
	bd, bok := viewDepth(b.Module)
	if aok && bok && ad != bd {
		return cmp.Compare(ad, bd)
	}

	if ap, bp := sortOrderPriority(a.Module), sortOrderPriority(b.Module); ap != bp {
		return cmp.Compare(bp, ap)
	}
	if ap, bp := renderOrderPriority(a.Module), renderOrderPriority(b.Module); ap != bp {
		return cmp.Compare(bp, ap)
	}

	la, lb := a.SortingLayer, b.SortingLayer
	if layerValue != nil {
		la, lb = layerValue(la), layerValue(lb)
	}
	if la != lb {
		return cmp.Compare(lb, la)
	}

	if a.SortingOrder != b.SortingOrder {
		return cmp.Compare(b.SortingOrder, a.SortingOrder)
	}

	// Depth only means something within one hierarchy.
	if a.Depth != b.Depth && a.Node.Root() == b.Node.Root() {
		return cmp.Compare(b.Depth, a.Depth)
	}

	if a.Distance != b.Distance {
		return cmp.Compare(a.Distance, b.Distance)
	}

	return cmp.Compare(a.Index, b.Index)
}

// SortHits orders hits in place with CompareHits. The sort is stable, so two
// hits with identical keys (index included) keep their relative order.
func SortHits(hits []HitResult, layerValue LayerValueFunc) {
	slices.SortStableFunc(hits, func(a, b HitResult) int {
		return CompareHits(&a, &b, layerValue)
	})
}

// FirstHit returns the first hit that names a target, or the zero HitResult.
func FirstHit(hits []HitResult) HitResult {
	for _, h := range hits {
		if h.IsValid() {
			return h
		}
	}
	return HitResult{}
}

func viewDepth(r Raycaster) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return r.ViewDepth()
}

func sortOrderPriority(r Raycaster) int {
	if r == nil {
		return 0
	}
	return r.SortOrderPriority()
}

func renderOrderPriority(r Raycaster) int {
	if r == nil {
		return 0
	}
	return r.RenderOrderPriority()
}
