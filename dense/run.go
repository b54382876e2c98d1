// Package dense: engine entry point and backtracking search.
//
// The search maps vertices one at a time in a connectivity-guided
// order: after each component's root, every vertex is anchored to an
// already-mapped neighbor, so candidate images come from the image's
// adjacency row instead of the whole vertex set. A candidate is
// feasible when it matches the vertex's color class, mirrors its loop,
// maps every already-mapped neighbor onto a neighbor of equal arc
// color, and holds no extra arcs into the mapped image set (popcount
// comparison). Completed maps are exact automorphisms; they are
// counted for the group order and merged into a union-find whose
// classes become the orbits.

package dense

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/automorph/encode"
)

// Run executes the dense engine on the given encoding.
//
// lab/ptn carry the initial coloring (ignored when opts.DefaultPtn),
// orbits must be a zero-initialized slice of length dg.N and receives
// the smallest vertex index of each vertex's orbit, and stats is
// overwritten with the result. The call blocks until the search
// completes; it never fails other than through Stats.ErrStatus.
func Run(dg *encode.Dense, lab, ptn, orbits []int, opts Options, stats *Stats) {
	*stats = Stats{GroupSize1: 1}
	if dg.N > MaxN {
		stats.ErrStatus = StatusNTooBig
		return
	}
	if dg.M > MaxSetwords {
		stats.ErrStatus = StatusMTooBig
		return
	}

	s := &search{dg: dg, n: dg.N, m: dg.M, opts: opts}
	if opts.Digraph {
		s.buildTranspose()
	}
	s.buildColors(lab, ptn)
	s.buildOrder()
	s.enumerate()
	s.report(orbits, stats)
}

// step places one vertex of the mapping order. anchor is an earlier
// neighbor (-1 for component roots); anchorOut records the arc
// direction anchor→v (true) vs v→anchor (false).
type step struct {
	v         int
	anchor    int
	anchorOut bool
}

// search carries the per-invocation state of one engine run.
type search struct {
	dg   *encode.Dense
	n, m int
	opts Options

	rev   [][]uint64 // transpose rows, Digraph only
	color []int      // refined color class per vertex
	order []step     // connectivity-guided mapping order

	perm   []int    // vertex → image, -1 while unmapped
	used   []bool   // image already taken
	mapped []uint64 // bitset of mapped vertices
	images []uint64 // bitset of taken images

	parent []int // union-find over vertices
	count  float64
	gens   int
}

// buildTranspose materializes reverse adjacency rows so in-arcs can be
// scanned as cheaply as out-arcs.
func (s *search) buildTranspose() {
	s.rev = make([][]uint64, s.n)
	for v := range s.rev {
		s.rev[v] = make([]uint64, s.m)
	}
	for u := 0; u < s.n; u++ {
		eachBit(s.dg.Rows[u], func(v int) {
			s.rev[v][u/WordSize] |= 1 << (uint(u) % WordSize)
		})
	}
}

// buildColors derives the search's color classes: the supplied lab/ptn
// classes (or one class under DefaultPtn) strengthened by out-degree
// and, in digraph mode, in-degree. The strengthened classes are an
// automorphism invariant, so restricting images to equal colors loses
// no automorphisms.
func (s *search) buildColors(lab, ptn []int) {
	base := make([]int, s.n)
	if !s.opts.DefaultPtn {
		c := 0
		for i, v := range lab {
			base[v] = c
			if ptn[i] == 0 {
				c++
			}
		}
	}

	type invariant struct {
		base, out, in int
	}
	inv := make([]invariant, s.n)
	for v := 0; v < s.n; v++ {
		out := 0
		for _, w := range s.dg.Rows[v] {
			out += bits.OnesCount64(w)
		}
		in := 0
		if s.opts.Digraph {
			for _, w := range s.rev[v] {
				in += bits.OnesCount64(w)
			}
		}
		inv[v] = invariant{base: base[v], out: out, in: in}
	}

	// Rank distinct invariants canonically so class numbering depends
	// only on invariant content, never on first-seen order.
	rank := make(map[invariant]int, s.n)
	for _, iv := range inv {
		rank[iv] = 0
	}
	keys := make([]invariant, 0, len(rank))
	for iv := range rank {
		keys = append(keys, iv)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].base != keys[b].base {
			return keys[a].base < keys[b].base
		}
		if keys[a].out != keys[b].out {
			return keys[a].out < keys[b].out
		}

		return keys[a].in < keys[b].in
	})
	for i, iv := range keys {
		rank[iv] = i
	}

	s.color = make([]int, s.n)
	for v := 0; v < s.n; v++ {
		s.color[v] = rank[inv[v]]
	}
}

// buildOrder runs a BFS over the underlying connectivity (out-arcs,
// plus in-arcs in digraph mode) so that every non-root vertex is
// anchored to an earlier neighbor.
func (s *search) buildOrder() {
	s.order = make([]step, 0, s.n)
	seen := make([]bool, s.n)
	queue := make([]int, 0, s.n)
	for r := 0; r < s.n; r++ {
		if seen[r] {
			continue
		}
		seen[r] = true
		s.order = append(s.order, step{v: r, anchor: -1})
		queue = append(queue[:0], r)
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			eachBit(s.dg.Rows[x], func(y int) {
				if !seen[y] {
					seen[y] = true
					s.order = append(s.order, step{v: y, anchor: x, anchorOut: true})
					queue = append(queue, y)
				}
			})
			if s.opts.Digraph {
				eachBit(s.rev[x], func(y int) {
					if !seen[y] {
						seen[y] = true
						s.order = append(s.order, step{v: y, anchor: x, anchorOut: false})
						queue = append(queue, y)
					}
				})
			}
		}
	}
}

// enumerate runs the backtracking search over all automorphisms.
func (s *search) enumerate() {
	s.perm = make([]int, s.n)
	for i := range s.perm {
		s.perm[i] = -1
	}
	s.used = make([]bool, s.n)
	s.mapped = make([]uint64, s.m)
	s.images = make([]uint64, s.m)
	s.parent = make([]int, s.n)
	for i := range s.parent {
		s.parent[i] = i
	}
	s.extend(0)
}

func (s *search) extend(k int) {
	if k == s.n {
		s.record()
		return
	}
	st := s.order[k]
	try := func(w int) {
		if !s.feasible(st.v, w) {
			return
		}
		s.assign(st.v, w)
		s.extend(k + 1)
		s.unassign(st.v, w)
	}
	switch {
	case st.anchor < 0:
		for w := 0; w < s.n; w++ {
			try(w)
		}
	case st.anchorOut:
		// v has the arc anchor→v, so its image needs the arc
		// perm[anchor]→w: scan the image's out-row.
		eachBit(s.dg.Rows[s.perm[st.anchor]], try)
	default:
		eachBit(s.rev[s.perm[st.anchor]], try)
	}
}

// feasible reports whether mapping u→w extends the current partial
// automorphism.
func (s *search) feasible(u, w int) bool {
	if s.used[w] || s.color[u] != s.color[w] {
		return false
	}
	if s.dg.ArcColor(u, u) != s.dg.ArcColor(w, w) {
		return false
	}

	// Mapped out-neighbor counts must agree: together with the color
	// check below this forces w's arcs into the mapped image set to be
	// exactly the images of u's arcs into the mapped set.
	cu, cw := 0, 0
	for i := 0; i < s.m; i++ {
		cu += bits.OnesCount64(s.dg.Rows[u][i] & s.mapped[i])
		cw += bits.OnesCount64(s.dg.Rows[w][i] & s.images[i])
	}
	if cu != cw {
		return false
	}
	ok := true
	eachMaskedBit(s.dg.Rows[u], s.mapped, func(j int) {
		if s.dg.ArcColor(w, s.perm[j]) != s.dg.ArcColor(u, j) {
			ok = false
		}
	})
	if !ok {
		return false
	}

	if s.opts.Digraph {
		cu, cw = 0, 0
		for i := 0; i < s.m; i++ {
			cu += bits.OnesCount64(s.rev[u][i] & s.mapped[i])
			cw += bits.OnesCount64(s.rev[w][i] & s.images[i])
		}
		if cu != cw {
			return false
		}
		eachMaskedBit(s.rev[u], s.mapped, func(j int) {
			if s.dg.ArcColor(s.perm[j], w) != s.dg.ArcColor(j, u) {
				ok = false
			}
		})
		if !ok {
			return false
		}
	}

	return true
}

func (s *search) assign(u, w int) {
	s.perm[u] = w
	s.used[w] = true
	s.mapped[u/WordSize] |= 1 << (uint(u) % WordSize)
	s.images[w/WordSize] |= 1 << (uint(w) % WordSize)
}

func (s *search) unassign(u, w int) {
	s.perm[u] = -1
	s.used[w] = false
	s.mapped[u/WordSize] &^= 1 << (uint(u) % WordSize)
	s.images[w/WordSize] &^= 1 << (uint(w) % WordSize)
}

// record tallies one complete automorphism: the group order grows by
// one, orbits merge along v→perm[v], and the automorphism counts as a
// generator when it extended the orbit partition.
func (s *search) record() {
	s.count++
	merged := false
	for v := 0; v < s.n; v++ {
		if s.union(v, s.perm[v]) {
			merged = true
		}
	}
	if merged {
		s.gens++
	}
}

func (s *search) find(v int) int {
	for s.parent[v] != v {
		s.parent[v] = s.parent[s.parent[v]]
		v = s.parent[v]
	}

	return v
}

func (s *search) union(a, b int) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	s.parent[rb] = ra

	return true
}

// report folds the search tallies into the statistics record and the
// orbit array (smallest vertex index per orbit).
func (s *search) report(orbits []int, stats *Stats) {
	rep := make([]int, s.n)
	for i := range rep {
		rep[i] = -1
	}
	for v := 0; v < s.n; v++ {
		r := s.find(v)
		if rep[r] < 0 {
			rep[r] = v
			stats.NumOrbits++
		}
		orbits[v] = rep[r]
	}

	stats.NumGenerators = s.gens
	base, exp := s.count, 0
	for base >= 10 {
		base /= 10
		exp++
	}
	stats.GroupSize1, stats.GroupSize2 = base, exp
	stats.ErrStatus = StatusOK
}
