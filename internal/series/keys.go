package series

import (
	"sort"
	"strconv"

	"popchart/internal/dataset"
)

// Keys returns the distinct keys of rows in first-occurrence order, or
// sorted ascending when sorted is set. Keys that all parse as numbers sort
// numerically.
func Keys(rows []dataset.Row, key func(dataset.Row) string, sorted bool) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	if sorted {
		sortKeys(out)
	}
	return out
}

func sortKeys(keys []string) {
	nums := make([]float64, len(keys))
	numeric := true
	for i, k := range keys {
		v, err := strconv.ParseFloat(k, 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = v
	}
	if !numeric {
		sort.Strings(keys)
		return
	}
	sort.Sort(byNumber{keys: keys, nums: nums})
}

type byNumber struct {
	keys []string
	nums []float64
}

func (b byNumber) Len() int           { return len(b.keys) }
func (b byNumber) Less(i, j int) bool { return b.nums[i] < b.nums[j] }
func (b byNumber) Swap(i, j int) {
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
	b.nums[i], b.nums[j] = b.nums[j], b.nums[i]
}
