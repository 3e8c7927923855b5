package boolcore

// primeSizes is the ascending sequence of bucket counts Dict and Set grow
// through, per spec.md §3.
var primeSizes = []int{
	7, 17, 37, 79, 163, 331, 673, 1361, 2729, 5471,
	10949, 21911, 43853, 87719, 175447, 350899, 701819, 1403641,
}

func primeIndexAtLeast(n int) int {
	for i, p := range primeSizes {
		if p >= n {
			return i
		}
	}
	return len(primeSizes) - 1
}

func bucketOf(n *Node, numBuckets int) int {
	return int(n.seq % uint64(numBuckets))
}

// loadFactorExceeded reports whether count/buckets > 1.5.
func loadFactorExceeded(count, buckets int) bool {
	return count*2 > buckets*3
}
