package psi

// reduceIsoform collapses per-junction reads into one value per sample
// for a single isoform. Samples that were not observed on every one of
// the isoform's junctions are dropped, not zero-filled: a partially
// measured sample is no evidence at all. An empty input passes through
// unchanged.
func reduceIsoform(bySample map[string][]int, nJunctions int, method Method) map[string]float64 {
	out := make(map[string]float64, len(bySample))
	for sample, counts := range bySample {
		if len(counts) != nJunctions {
			continue
		}
		out[sample] = reduceCounts(counts, nJunctions, method)
	}
	return out
}

func reduceCounts(counts []int, nJunctions int, method Method) float64 {
	if method == MethodMin {
		min := counts[0]
		for _, c := range counts[1:] {
			if c < min {
				min = c
			}
		}
		return float64(min)
	}
	return float64(sum(counts)) / float64(nJunctions)
}
