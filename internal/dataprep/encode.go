// Package dataprep holds the column transformations applied while loading.
package dataprep

// LabelEncode assigns each distinct value a dense integer code in order of
// first appearance and returns the encoded column together with the labels,
// where labels[code] is the original value.
func LabelEncode(values []string) ([]int, []string) {
	index := make(map[string]int)
	labels := []string{}
	out := make([]int, len(values))
	for i, v := range values {
		code, ok := index[v]
		if !ok {
			code = len(labels)
			index[v] = code
			labels = append(labels, v)
		}
		out[i] = code
	}
	return out, labels
}
