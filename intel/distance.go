package intel

import "sort"

// editDistance computes the Levenshtein distance between a and b with a
// two-row table, bailing out early with threshold+1 once no cell in a row
// can stay within the threshold.
func editDistance(a, b string, threshold int) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > threshold {
		return threshold + 1
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > threshold {
			return threshold + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// nearMisses returns up to limit candidates within maxDist edit distance of
// name, closest first; ties break alphabetically for determinism. A candidate
// that extends name as a prefix (a truncated word mid-typing, e.g. "thresh"
// for "threshold") always qualifies, scored at maxDist so genuinely close
// misses rank above it.
func nearMisses(name string, candidates []string, maxDist, limit int) []string {
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, c := range candidates {
		if c == name {
			continue
		}
		if d := editDistance(name, c, maxDist); d <= maxDist {
			hits = append(hits, scored{c, d})
		} else if name != "" && hasPrefixFold(c, name) {
			hits = append(hits, scored{c, maxDist})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
