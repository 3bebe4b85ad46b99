package kdtree

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kdtrace/aabb"
	"github.com/katalvlaran/kdtrace/aap"
	"github.com/katalvlaran/kdtrace/triangle"
	"github.com/katalvlaran/kdtrace/vecmath"
)

// rootMargin is the epsilon margin (spec.md §4.K "enlarged by (1,1,1)")
// added to the raw triangle bounding box so that face-coplanar geometry
// ends up strictly interior to the root cell.
var rootMargin = vecmath.New(1, 1, 1)

// Build constructs a Tree from triangles using the supplied Options,
// falling back to DefaultCostParams, a max depth of 20, and fan-out
// below depth 4 (spec.md §6 build).
//
// Build fails only on a structurally invalid CostParams or a max depth
// above the hard cap (spec.md §7); an empty triangles slice is not an
// error — it produces a tree whose root is an empty leaf.
func Build(triangles []triangle.Triangle, opts ...Option) (*Tree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.cost.validate(); err != nil {
		return nil, err
	}
	if cfg.maxDepth > hardMaxDepth {
		return nil, ErrMaxDepthExceeded
	}

	if len(triangles) == 0 {
		return &Tree{Root: leafNode(nil), Triangles: nil, costParams: cfg.cost}, nil
	}

	boundary := rootBoundary(triangles)
	indices := make([]uint32, len(triangles))
	for i := range indices {
		indices[i] = uint32(i)
	}

	b := &builder{triangles: triangles, cfg: cfg}
	root, err := b.build(context.Background(), cell{boundary: boundary, indices: indices}, 0)
	if err != nil {
		return nil, err
	}

	return &Tree{Root: root, Triangles: triangles, Boundary: boundary, costParams: cfg.cost}, nil
}

// rootBoundary folds Inf/Sup over every triangle's three vertices and
// enlarges the result by rootMargin (spec.md §4.K).
func rootBoundary(triangles []triangle.Triangle) aabb.AABB {
	pts := make([]vecmath.Vec3, 0, len(triangles)*3)
	for _, t := range triangles {
		pts = append(pts, t.V0, t.V1, t.V2)
	}

	return aabb.FromPoints(pts).Enlarge(rootMargin)
}

// builder holds the read-only state shared by every recursive build
// call: the full triangle array and the resolved config. It carries no
// mutable fields, so the same *builder is shared freely across
// goroutines fanning out over independent subtrees (spec.md §5).
type builder struct {
	triangles []triangle.Triangle
	cfg       config
}

// build recursively partitions c, returning the subtree rooted there.
// The only error path is a propagated child error; build itself never
// fails once Build's precondition checks have passed.
func (b *builder) build(ctx context.Context, c cell, depth int) (*Node, error) {
	if depth >= b.cfg.maxDepth || len(c.indices) == 0 {
		return leafNode(c.indices), nil
	}

	clipped := clipToCell(b.triangles, c.indices, c.boundary)
	if len(clipped) == 0 {
		return leafNode(nil), nil
	}

	candidates := candidatePlanes(clipped)
	if len(candidates) == 0 {
		return leafNode(c.indices), nil
	}

	best, bestOK := b.bestSplit(ctx, c, clipped, candidates, depth)
	if !bestOK {
		return leafNode(c.indices), nil
	}

	if best.cost >= leafCost(b.cfg.cost, len(c.indices)) {
		return leafNode(c.indices), nil
	}

	left := mergeIndices(best.left, best.planar)
	right := mergeIndices(best.right, best.planar)
	lo, hi := c.boundary.Split(best.plane)

	if depth < b.cfg.parallelDepth {
		var leftNode, rightNode *Node
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n, err := b.build(gctx, cell{boundary: lo, indices: left}, depth+1)
			leftNode = n

			return err
		})
		g.Go(func() error {
			n, err := b.build(gctx, cell{boundary: hi, indices: right}, depth+1)
			rightNode = n

			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return internalNode(best.plane, leftNode, rightNode), nil
	}

	leftNode, err := b.build(ctx, cell{boundary: lo, indices: left}, depth+1)
	if err != nil {
		return nil, err
	}
	rightNode, err := b.build(ctx, cell{boundary: hi, indices: right}, depth+1)
	if err != nil {
		return nil, err
	}

	return internalNode(best.plane, leftNode, rightNode), nil
}

// candidatePlanes collects, sorts, and dedupes one candidate per axis
// per face of every clipped AABB (spec.md §4.K step 3).
func candidatePlanes(clipped []clippedTriangle) []aap.AAP {
	out := make([]aap.AAP, 0, len(clipped)*6)
	for _, c := range clipped {
		for axis := vecmath.X; axis <= vecmath.Z; axis++ {
			out = append(out, aap.New(axis, c.box.Min.Get(axis)))
			out = append(out, aap.New(axis, c.box.Max.Get(axis)))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	deduped := out[:0]
	for i, p := range out {
		if i == 0 || !p.Equal(out[i-1]) {
			deduped = append(deduped, p)
		}
	}

	return deduped
}

// splitCandidate is the outcome of evaluating one candidate plane
// against a cell's clipped triangles.
type splitCandidate struct {
	plane               aap.AAP
	cost                float32
	left, right, planar []uint32
	valid               bool
}

// evaluateCandidate partitions clipped at plane and scores it, or marks
// it invalid if it is degenerate (spec.md §4.J "Rejecting degenerate
// splits").
func (b *builder) evaluateCandidate(c cell, clipped []clippedTriangle, plane aap.AAP) splitCandidate {
	left, right, planar := partition(clipped, plane)
	lo, hi := c.boundary.Split(plane)

	if isDegenerateSplit(lo.Volume(), hi.Volume(), len(planar)) {
		return splitCandidate{}
	}

	nLeft := len(left) + len(planar)
	nRight := len(right) + len(planar)
	cost := splitCost(b.cfg.cost, c.boundary.SurfaceArea(), lo.SurfaceArea(), hi.SurfaceArea(), nLeft, nRight)

	return splitCandidate{plane: plane, cost: cost, left: left, right: right, planar: planar, valid: true}
}

// bestSplit evaluates every candidate — in parallel below
// parallelDepth, inline otherwise — and reduces to the minimum-cost
// valid candidate, tie-broken by candidates' ascending AAP order (the
// order they were enumerated in), per spec.md §4.K step 4's determinism
// rule.
func (b *builder) bestSplit(ctx context.Context, c cell, clipped []clippedTriangle, candidates []aap.AAP, depth int) (splitCandidate, bool) {
	results := make([]splitCandidate, len(candidates))

	if depth < b.cfg.parallelDepth && len(candidates) > 1 {
		g, _ := errgroup.WithContext(ctx)
		for i, plane := range candidates {
			i, plane := i, plane
			g.Go(func() error {
				results[i] = b.evaluateCandidate(c, clipped, plane)

				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, plane := range candidates {
			results[i] = b.evaluateCandidate(c, clipped, plane)
		}
	}

	best := splitCandidate{}
	found := false
	for _, r := range results {
		if !r.valid {
			continue
		}
		if !found || r.cost < best.cost {
			best = r
			found = true
		}
	}

	return best, found
}

// mergeIndices concatenates a and planar, the side-specific group and
// the triangles conservatively assigned to both children (spec.md
// §4.I).
func mergeIndices(a, planar []uint32) []uint32 {
	if len(planar) == 0 {
		return a
	}

	out := make([]uint32, 0, len(a)+len(planar))
	out = append(out, a...)
	out = append(out, planar...)

	return out
}
