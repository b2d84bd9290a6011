package game

import "fmt"

// BucketCount is the number of accuracy buckets used for charting: ten
// decade ranges plus a dedicated bucket for a perfect 100%.
const BucketCount = 11

// BucketIndex maps an accuracy value to its bucket index. 100 maps to the
// final bucket; every other value falls into decade accuracy/10.
func BucketIndex(accuracy int) int {
	if accuracy <= 0 {
		return 0
	}
	if accuracy >= 100 {
		return BucketCount - 1
	}
	return accuracy / 10
}

// BucketLabel returns the display label for a bucket index.
func BucketLabel(idx int) string {
	if idx < 0 || idx >= BucketCount {
		return ""
	}
	if idx == BucketCount-1 {
		return "100%"
	}
	return fmt.Sprintf("%d%%-%d%%", idx*10, idx*10+9)
}

// BucketLabels returns the ordered labels of all accuracy buckets.
func BucketLabels() []string {
	labels := make([]string, BucketCount)
	for i := range labels {
		labels[i] = BucketLabel(i)
	}
	return labels
}

// BucketCounts classifies the recorded results by accuracy bucket. Every
// bucket label is present in the returned map; empty buckets count 0. The
// counts are recomputed from the current entries on each call.
func (h *History) BucketCounts() map[string]int {
	counts := make(map[string]int, BucketCount)
	for i := 0; i < BucketCount; i++ {
		counts[BucketLabel(i)] = 0
	}
	for _, r := range h.entries {
		counts[BucketLabel(BucketIndex(r.Accuracy))]++
	}
	return counts
}
