// Package sparse: engine entry point and backtracking walker.
//
// The walker follows the same discipline as the other engines — map
// vertices in a connectivity-guided order, restrict candidate images
// to the adjacency segment of an already-placed anchor, and accept a
// candidate only when colors, loops, and every arc into the placed
// region agree — but trades the dense engine's bit arithmetic for
// degree-bounded scans of sorted CSR segments, which keeps the cost
// proportional to the arcs actually present.

package sparse

import (
	"sort"

	"github.com/katalvlaran/automorph/encode"
)

// Run executes the sparse engine on the given encoding.
//
// lab/ptn carry the initial coloring (ignored when opts.DefaultPtn),
// orbits must be a zero-initialized slice of length sg.N and receives
// the smallest vertex index of each vertex's orbit, and stats is
// overwritten with the result. The call blocks until the walk
// completes and cannot fail.
func Run(sg *encode.Sparse, lab, ptn, orbits []int, opts Options, stats *Stats) {
	w := &walker{sg: sg, n: sg.N, opts: opts}
	w.prepare(lab, ptn)
	w.walk()
	w.report(orbits, stats)
}

// walker carries the per-invocation state of one engine run.
type walker struct {
	sg   *encode.Sparse
	n    int
	opts Options

	rev   [][]int // in-neighbor lists, Digraph only
	cell  []int   // color class per vertex
	tour  []visit // mapping order

	image      []int  // vertex → image, -1 while unplaced
	placed     []bool // vertex already placed
	imageTaken []bool // image already taken

	parent []int // union-find over vertices
	total  float64
	gens   int
}

// visit places one vertex of the tour. via is an earlier neighbor (-1
// for component roots); viaOut records whether the connecting arc runs
// via→v (out) or v→via (in).
type visit struct {
	v      int
	via    int
	viaOut bool
}

// prepare builds reverse adjacency (digraph mode), the color cells,
// and the connectivity-guided tour.
func (w *walker) prepare(lab, ptn []int) {
	if w.opts.Digraph {
		w.rev = make([][]int, w.n)
		for u := 0; u < w.n; u++ {
			for _, v := range w.sg.Neighbors(u) {
				w.rev[v] = append(w.rev[v], u)
			}
		}
	}

	w.buildCells(lab, ptn)
	w.buildTour()
}

// buildCells derives color cells from lab/ptn (or one cell under
// DefaultPtn), strengthened by out-degree and, in digraph mode,
// in-degree — both automorphism invariants.
func (w *walker) buildCells(lab, ptn []int) {
	base := make([]int, w.n)
	if !w.opts.DefaultPtn {
		c := 0
		for i, v := range lab {
			base[v] = c
			if ptn[i] == 0 {
				c++
			}
		}
	}

	type sig struct{ base, out, in int }
	sigs := make([]sig, w.n)
	for v := 0; v < w.n; v++ {
		in := 0
		if w.opts.Digraph {
			in = len(w.rev[v])
		}
		sigs[v] = sig{base: base[v], out: w.sg.D[v], in: in}
	}

	distinct := make(map[sig]int, w.n)
	for _, sv := range sigs {
		distinct[sv] = 0
	}
	ordered := make([]sig, 0, len(distinct))
	for sv := range distinct {
		ordered = append(ordered, sv)
	}
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a].base != ordered[b].base {
			return ordered[a].base < ordered[b].base
		}
		if ordered[a].out != ordered[b].out {
			return ordered[a].out < ordered[b].out
		}

		return ordered[a].in < ordered[b].in
	})
	for i, sv := range ordered {
		distinct[sv] = i
	}

	w.cell = make([]int, w.n)
	for v := 0; v < w.n; v++ {
		w.cell[v] = distinct[sigs[v]]
	}
}

// buildTour runs a BFS over the underlying connectivity so that every
// non-root vertex is anchored to an earlier neighbor.
func (w *walker) buildTour() {
	w.tour = make([]visit, 0, w.n)
	seen := make([]bool, w.n)
	queue := make([]int, 0, w.n)
	for r := 0; r < w.n; r++ {
		if seen[r] {
			continue
		}
		seen[r] = true
		w.tour = append(w.tour, visit{v: r, via: -1})
		queue = append(queue[:0], r)
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for _, y := range w.sg.Neighbors(x) {
				if !seen[y] {
					seen[y] = true
					w.tour = append(w.tour, visit{v: y, via: x, viaOut: true})
					queue = append(queue, y)
				}
			}
			if w.opts.Digraph {
				for _, y := range w.rev[x] {
					if !seen[y] {
						seen[y] = true
						w.tour = append(w.tour, visit{v: y, via: x, viaOut: false})
						queue = append(queue, y)
					}
				}
			}
		}
	}
}

// walk runs the backtracking enumeration over all automorphisms.
func (w *walker) walk() {
	w.image = make([]int, w.n)
	for i := range w.image {
		w.image[i] = -1
	}
	w.placed = make([]bool, w.n)
	w.imageTaken = make([]bool, w.n)
	w.parent = make([]int, w.n)
	for i := range w.parent {
		w.parent[i] = i
	}
	w.descend(0)
}

func (w *walker) descend(k int) {
	if k == w.n {
		w.tally()
		return
	}
	vs := w.tour[k]
	place := func(c int) {
		if !w.admissible(vs.v, c) {
			return
		}
		w.image[vs.v] = c
		w.placed[vs.v] = true
		w.imageTaken[c] = true
		w.descend(k + 1)
		w.image[vs.v] = -1
		w.placed[vs.v] = false
		w.imageTaken[c] = false
	}
	switch {
	case vs.via < 0:
		for c := 0; c < w.n; c++ {
			place(c)
		}
	case vs.viaOut:
		// v carries the arc via→v, so its image must sit in the
		// out-segment of via's image.
		for _, c := range w.sg.Neighbors(w.image[vs.via]) {
			place(c)
		}
	default:
		for _, c := range w.rev[w.image[vs.via]] {
			place(c)
		}
	}
}

// admissible reports whether placing u at image c extends the current
// partial automorphism.
func (w *walker) admissible(u, c int) bool {
	if w.imageTaken[c] || w.cell[u] != w.cell[c] {
		return false
	}
	if w.sg.ArcColor(u, u) != w.sg.ArcColor(c, c) {
		return false
	}

	// Out-arcs: every placed neighbor of u must map onto an equal-color
	// neighbor of c, and c must have no extra arcs into the taken
	// images (count comparison).
	uPlaced := 0
	for _, j := range w.sg.Neighbors(u) {
		if !w.placed[j] {
			continue
		}
		uPlaced++
		if w.sg.ArcColor(c, w.image[j]) != w.sg.ArcColor(u, j) {
			return false
		}
	}
	cTaken := 0
	for _, x := range w.sg.Neighbors(c) {
		if w.imageTaken[x] {
			cTaken++
		}
	}
	if uPlaced != cTaken {
		return false
	}

	if w.opts.Digraph {
		uPlaced, cTaken = 0, 0
		for _, j := range w.rev[u] {
			if !w.placed[j] {
				continue
			}
			uPlaced++
			if w.sg.ArcColor(w.image[j], c) != w.sg.ArcColor(j, u) {
				return false
			}
		}
		for _, x := range w.rev[c] {
			if w.imageTaken[x] {
				cTaken++
			}
		}
		if uPlaced != cTaken {
			return false
		}
	}

	return true
}

// tally records one complete automorphism.
func (w *walker) tally() {
	w.total++
	merged := false
	for v := 0; v < w.n; v++ {
		if w.union(v, w.image[v]) {
			merged = true
		}
	}
	if merged {
		w.gens++
	}
}

func (w *walker) find(v int) int {
	for w.parent[v] != v {
		w.parent[v] = w.parent[w.parent[v]]
		v = w.parent[v]
	}

	return v
}

func (w *walker) union(a, b int) bool {
	ra, rb := w.find(a), w.find(b)
	if ra == rb {
		return false
	}
	w.parent[rb] = ra

	return true
}

// report folds the walk tallies into the statistics record and the
// orbit array (smallest vertex index per orbit).
func (w *walker) report(orbits []int, stats *Stats) {
	*stats = Stats{}
	rep := make([]int, w.n)
	for i := range rep {
		rep[i] = -1
	}
	for v := 0; v < w.n; v++ {
		r := w.find(v)
		if rep[r] < 0 {
			rep[r] = v
			stats.NumOrbits++
		}
		orbits[v] = rep[r]
	}

	stats.NumGenerators = w.gens
	base, exp := w.total, 0
	for base >= 10 {
		base /= 10
		exp++
	}
	stats.GroupSize1, stats.GroupSize2 = base, exp
	stats.ErrStatus = StatusOK
}
