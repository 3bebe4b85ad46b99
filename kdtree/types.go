package kdtree

// hardMaxDepth bounds every traversal stack to a fixed array instead of
// a heap allocation (spec.md §5 "a fixed-capacity stack ... 20-30
// frames"). Build refuses any MaxDepth above it.
const hardMaxDepth = 32

// defaultMaxDepth is the default recursion budget (spec.md §6).
const defaultMaxDepth = 20

// defaultTraverseCost, defaultIntersectCost, defaultEmptyFactor are the
// SAH constants named in spec.md §6.
const (
	defaultTraverseCost  = 2.0
	defaultIntersectCost = 1.0
	defaultEmptyFactor   = 0.8
)

// CostParams parameterizes the Surface Area Heuristic (spec.md §4.J):
// the per-node traverse cost, the per-triangle intersect cost, and the
// multiplicative bonus applied to a split where one side is empty.
type CostParams struct {
	TraverseCost  float32
	IntersectCost float32
	EmptyFactor   float32
}

// DefaultCostParams returns the spec's default cost model: traverse
// cost 2.0, intersect cost 1.0, empty factor 0.8.
func DefaultCostParams() CostParams {
	return CostParams{
		TraverseCost:  defaultTraverseCost,
		IntersectCost: defaultIntersectCost,
		EmptyFactor:   defaultEmptyFactor,
	}
}

// validate reports the first invalid field, or nil if cp is usable.
func (cp CostParams) validate() error {
	if cp.TraverseCost <= 0 {
		return ErrInvalidTraverseCost
	}
	if cp.IntersectCost <= 0 {
		return ErrInvalidIntersectCost
	}
	if cp.EmptyFactor <= 0 || cp.EmptyFactor > 1 {
		return ErrInvalidEmptyFactor
	}

	return nil
}

// config holds the resolved settings for a single Build call.
type config struct {
	cost     CostParams
	maxDepth int
	// parallelDepth is how deep the recursion fans out over goroutines
	// before running the remaining subtree inline (spec.md §5). Nodes
	// at or below this depth are cheap enough that goroutine overhead
	// would dominate.
	parallelDepth int
}

func defaultConfig() config {
	return config{
		cost:          DefaultCostParams(),
		maxDepth:      defaultMaxDepth,
		parallelDepth: 4,
	}
}

// Option configures a Build call.
type Option func(*config)

// WithCostParams overrides the default SAH cost model.
func WithCostParams(cp CostParams) Option {
	return func(c *config) { c.cost = cp }
}

// WithMaxDepth overrides the default recursion budget. Panics if depth
// is not positive — a structurally meaningless request, caught at the
// call site rather than deferred to Build's returned error (mirroring
// dijkstra.WithMaxDistance's treatment of a negative cap). A depth that
// is merely too large for the hard cap is instead reported by Build as
// ErrMaxDepthExceeded, since the hard cap is a build-time invariant, not
// a call-site typo.
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic("kdtree: WithMaxDepth requires a positive depth")
	}

	return func(c *config) { c.maxDepth = depth }
}

// WithParallelDepth overrides the depth below which the builder stops
// fanning recursion out over goroutines. WithParallelDepth(0) disables
// parallel build entirely (every node runs inline, on the calling
// goroutine) — useful for deterministic profiling and for the golden
// rebuild test (spec.md §8 "rebuilding ... yields an identical tree").
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic("kdtree: WithParallelDepth requires a non-negative depth")
	}

	return func(c *config) { c.parallelDepth = depth }
}
