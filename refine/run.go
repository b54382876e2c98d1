// Package refine: refinement passes and the search they feed.
//
// Each refinement pass recolors every vertex by an invariant of its
// current color and the multiset of (neighbor color, arc color) pairs
// over its out-arcs and, in digraph mode, in-arcs. New colors are
// ranked by the canonical (bytewise) order of the encoded invariants,
// so the recoloring depends only on graph structure, never on
// traversal order, and automorphic vertices always stay in one class.
// Passes stop when the class count is stable or maxRounds is reached;
// the remaining symmetry is resolved by the same anchored backtracking
// discipline the other engines use, which profits directly from the
// finer classes.

package refine

import (
	"encoding/binary"
	"sort"

	"github.com/katalvlaran/automorph/encode"
)

// Run executes the refinement engine on the given encoding.
//
// lab/ptn carry the initial coloring (ignored when opts.DefaultPtn),
// orbits must be a zero-initialized slice of length sg.N and receives
// the smallest vertex index of each vertex's orbit, and stats is
// overwritten with the result. The call blocks until the search
// completes and cannot fail.
func Run(sg *encode.Sparse, lab, ptn, orbits []int, opts Options, stats *Stats) {
	p := &prober{sg: sg, n: sg.N, opts: opts}
	p.prepare(lab, ptn)
	p.refineColors()
	p.explore()
	p.report(orbits, stats)
}

// prober carries the per-invocation state of one engine run.
type prober struct {
	sg   *encode.Sparse
	n    int
	opts Options

	rev   [][]int // in-neighbor lists, Digraph only
	color []int   // current (refined) color per vertex
	ncell int     // number of distinct colors

	trail []leg // mapping order

	image  []int
	placed []bool
	taken  []bool

	parent []int
	total  float64
	gens   int
}

// leg places one vertex of the trail. via is an earlier neighbor (-1
// for component roots); viaOut records the direction of the anchoring
// arc.
type leg struct {
	v      int
	via    int
	viaOut bool
}

// prepare builds reverse adjacency and the base coloring.
func (p *prober) prepare(lab, ptn []int) {
	if p.opts.Digraph {
		p.rev = make([][]int, p.n)
		for u := 0; u < p.n; u++ {
			for _, v := range p.sg.Neighbors(u) {
				p.rev[v] = append(p.rev[v], u)
			}
		}
	}

	p.color = make([]int, p.n)
	p.ncell = 1
	if !p.opts.DefaultPtn {
		c := 0
		for i, v := range lab {
			p.color[v] = c
			if ptn[i] == 0 {
				c++
			}
		}
		if c > 0 {
			p.ncell = c
		}
	}
}

// refineColors iterates recoloring passes until the partition is
// stable or maxRounds is exhausted.
func (p *prober) refineColors() {
	for round := 0; round < maxRounds; round++ {
		if !p.refinePass() {
			return
		}
	}
}

// refinePass performs one recoloring pass and reports whether the
// partition became strictly finer.
func (p *prober) refinePass() bool {
	keys := make([]string, p.n)
	for v := 0; v < p.n; v++ {
		keys[v] = p.invariant(v)
	}

	distinct := make(map[string]int, p.ncell)
	for _, k := range keys {
		distinct[k] = 0
	}
	if len(distinct) == p.ncell {
		return false
	}
	ordered := make([]string, 0, len(distinct))
	for k := range distinct {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)
	for i, k := range ordered {
		distinct[k] = i
	}
	for v := 0; v < p.n; v++ {
		p.color[v] = distinct[keys[v]]
	}
	p.ncell = len(distinct)

	return true
}

// invariant encodes the recoloring key of v: its color followed by the
// sorted (neighbor color, arc color) pairs of its out-arcs and, in
// digraph mode, in-arcs. Keys are compared bytewise, so any injective
// encoding works; fixed-width little-endian fields keep it simple.
func (p *prober) invariant(v int) string {
	pack := func(us []int, out bool) []uint64 {
		pairs := make([]uint64, 0, len(us))
		for _, u := range us {
			var arc int32
			if out {
				arc = p.sg.ArcColor(v, u)
			} else {
				arc = p.sg.ArcColor(u, v)
			}
			pairs = append(pairs, uint64(p.color[u])<<32|uint64(uint32(arc)))
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a] < pairs[b] })

		return pairs
	}

	out := pack(p.sg.Neighbors(v), true)
	var in []uint64
	if p.opts.Digraph {
		in = pack(p.rev[v], false)
	}

	buf := make([]byte, 0, 8*(3+len(out)+len(in)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.color[v]))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(out)))
	for _, pr := range out {
		buf = binary.LittleEndian.AppendUint64(buf, pr)
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(in)))
	for _, pr := range in {
		buf = binary.LittleEndian.AppendUint64(buf, pr)
	}

	return string(buf)
}

// explore enumerates all automorphisms over the refined classes.
func (p *prober) explore() {
	p.trail = make([]leg, 0, p.n)
	seen := make([]bool, p.n)
	queue := make([]int, 0, p.n)
	for r := 0; r < p.n; r++ {
		if seen[r] {
			continue
		}
		seen[r] = true
		p.trail = append(p.trail, leg{v: r, via: -1})
		queue = append(queue[:0], r)
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for _, y := range p.sg.Neighbors(x) {
				if !seen[y] {
					seen[y] = true
					p.trail = append(p.trail, leg{v: y, via: x, viaOut: true})
					queue = append(queue, y)
				}
			}
			if p.opts.Digraph {
				for _, y := range p.rev[x] {
					if !seen[y] {
						seen[y] = true
						p.trail = append(p.trail, leg{v: y, via: x, viaOut: false})
						queue = append(queue, y)
					}
				}
			}
		}
	}

	p.image = make([]int, p.n)
	for i := range p.image {
		p.image[i] = -1
	}
	p.placed = make([]bool, p.n)
	p.taken = make([]bool, p.n)
	p.parent = make([]int, p.n)
	for i := range p.parent {
		p.parent[i] = i
	}
	p.descend(0)
}

func (p *prober) descend(k int) {
	if k == p.n {
		p.tally()
		return
	}
	lg := p.trail[k]
	place := func(c int) {
		if !p.fits(lg.v, c) {
			return
		}
		p.image[lg.v] = c
		p.placed[lg.v] = true
		p.taken[c] = true
		p.descend(k + 1)
		p.image[lg.v] = -1
		p.placed[lg.v] = false
		p.taken[c] = false
	}
	switch {
	case lg.via < 0:
		for c := 0; c < p.n; c++ {
			place(c)
		}
	case lg.viaOut:
		for _, c := range p.sg.Neighbors(p.image[lg.via]) {
			place(c)
		}
	default:
		for _, c := range p.rev[p.image[lg.via]] {
			place(c)
		}
	}
}

// fits reports whether placing u at image c extends the current
// partial automorphism.
func (p *prober) fits(u, c int) bool {
	if p.taken[c] || p.color[u] != p.color[c] {
		return false
	}
	if p.sg.ArcColor(u, u) != p.sg.ArcColor(c, c) {
		return false
	}

	uPlaced := 0
	for _, j := range p.sg.Neighbors(u) {
		if !p.placed[j] {
			continue
		}
		uPlaced++
		if p.sg.ArcColor(c, p.image[j]) != p.sg.ArcColor(u, j) {
			return false
		}
	}
	cTaken := 0
	for _, x := range p.sg.Neighbors(c) {
		if p.taken[x] {
			cTaken++
		}
	}
	if uPlaced != cTaken {
		return false
	}

	if p.opts.Digraph {
		uPlaced, cTaken = 0, 0
		for _, j := range p.rev[u] {
			if !p.placed[j] {
				continue
			}
			uPlaced++
			if p.sg.ArcColor(p.image[j], c) != p.sg.ArcColor(j, u) {
				return false
			}
		}
		for _, x := range p.rev[c] {
			if p.taken[x] {
				cTaken++
			}
		}
		if uPlaced != cTaken {
			return false
		}
	}

	return true
}

func (p *prober) tally() {
	p.total++
	merged := false
	for v := 0; v < p.n; v++ {
		if p.union(v, p.image[v]) {
			merged = true
		}
	}
	if merged {
		p.gens++
	}
}

func (p *prober) find(v int) int {
	for p.parent[v] != v {
		p.parent[v] = p.parent[p.parent[v]]
		v = p.parent[v]
	}

	return v
}

func (p *prober) union(a, b int) bool {
	ra, rb := p.find(a), p.find(b)
	if ra == rb {
		return false
	}
	p.parent[rb] = ra

	return true
}

// report folds the tallies into the statistics record and the orbit
// array (smallest vertex index per orbit).
func (p *prober) report(orbits []int, stats *Stats) {
	*stats = Stats{}
	rep := make([]int, p.n)
	for i := range rep {
		rep[i] = -1
	}
	for v := 0; v < p.n; v++ {
		r := p.find(v)
		if rep[r] < 0 {
			rep[r] = v
			stats.NumOrbits++
		}
		orbits[v] = rep[r]
	}

	stats.NumGenerators = p.gens
	base, exp := p.total, 0
	for base >= 10 {
		base /= 10
		exp++
	}
	stats.GroupSize1, stats.GroupSize2 = base, exp
	stats.ErrStatus = StatusOK
}
