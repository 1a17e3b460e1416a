package advanced

// Chord selection. Crossing chords exclude each other, and since crossings
// only ever pair a horizontal with a vertical chord, the conflict graph is
// bipartite. A maximum independent set of it is therefore the complement of
// a minimum vertex cover (König), which in turn falls out of a maximum
// matching. Splitting along a maximum independent set of chords is what
// makes the final rectangle count minimal.

const unmatched = -1

// bipartiteMatch computes a maximum matching with Hopcroft-Karp. adj holds,
// for each left vertex, the adjacent right vertices. Returns the two
// match arrays (unmatched entries are -1).
func bipartiteMatch(nLeft, nRight int, adj [][]int) (matchL, matchR []int) {
	matchL = make([]int, nLeft)
	matchR = make([]int, nRight)
	for i := range matchL {
		matchL[i] = unmatched
	}
	for i := range matchR {
		matchR[i] = unmatched
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, nLeft)
	queue := make([]int, 0, nLeft)

	// Layered BFS from the free left vertices. Reports whether any
	// augmenting path exists.
	bfs := func() bool {
		queue = queue[:0]
		for u := 0; u < nLeft; u++ {
			if matchL[u] == unmatched {
				dist[u] = 0
				queue = append(queue, u)
			} else {
				dist[u] = inf
			}
		}
		found := false
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj[u] {
				w := matchR[v]
				if w == unmatched {
					found = true
				} else if dist[w] == inf {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
			}
		}
		return found
	}

	var dfs func(u int) bool
	dfs = func(u int) bool {
		for _, v := range adj[u] {
			w := matchR[v]
			if w == unmatched || (dist[w] == dist[u]+1 && dfs(w)) {
				matchL[u] = v
				matchR[v] = u
				return true
			}
		}
		dist[u] = inf
		return false
	}

	for bfs() {
		for u := 0; u < nLeft; u++ {
			if matchL[u] == unmatched {
				dfs(u)
			}
		}
	}
	return matchL, matchR
}

// maximumIndependentSet returns which left and right vertices belong to a
// maximum independent set of the bipartite graph. König's construction:
// grow Z from the free left vertices by alternating paths (non-matching
// edges rightward, matching edges leftward); the minimum cover is
// (L without Z) plus (R within Z), and the independent set is its
// complement.
func maximumIndependentSet(nLeft, nRight int, adj [][]int) (keepL, keepR []bool) {
	matchL, matchR := bipartiteMatch(nLeft, nRight, adj)

	inZL := make([]bool, nLeft)
	inZR := make([]bool, nRight)
	queue := make([]int, 0, nLeft)
	for u := 0; u < nLeft; u++ {
		if matchL[u] == unmatched {
			inZL[u] = true
			queue = append(queue, u)
		}
	}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range adj[u] {
			if matchL[u] == v || inZR[v] {
				continue
			}
			inZR[v] = true
			if w := matchR[v]; w != unmatched && !inZL[w] {
				inZL[w] = true
				queue = append(queue, w)
			}
		}
	}

	keepL = inZL
	keepR = make([]bool, nRight)
	for v := 0; v < nRight; v++ {
		keepR[v] = !inZR[v]
	}
	return keepL, keepR
}

// selectChords picks a maximum set of pairwise non-crossing chords.
func selectChords(hChords, vChords []*Chord, crossings []SegmentCrossing) []*Chord {
	if len(crossings) == 0 {
		out := make([]*Chord, 0, len(hChords)+len(vChords))
		out = append(out, hChords...)
		out = append(out, vChords...)
		return out
	}

	hIndex := make(map[*Chord]int, len(hChords))
	for i, c := range hChords {
		hIndex[c] = i
	}
	vIndex := make(map[*Chord]int, len(vChords))
	for i, c := range vChords {
		vIndex[c] = i
	}
	adj := make([][]int, len(hChords))
	for _, x := range crossings {
		h, v := hIndex[x.H], vIndex[x.V]
		adj[h] = append(adj[h], v)
	}

	keepH, keepV := maximumIndependentSet(len(hChords), len(vChords), adj)
	var out []*Chord
	for i, keep := range keepH {
		if keep {
			out = append(out, hChords[i])
		}
	}
	for i, keep := range keepV {
		if keep {
			out = append(out, vChords[i])
		}
	}
	return out
}
