package models

// CategoryMapping maps dense category codes (0..K-1) to the original labels.
// It is built once by the loader and only read afterwards.
type CategoryMapping struct {
	labels []string
}

// NewCategoryMapping builds a mapping where labels[i] is the label of code i.
func NewCategoryMapping(labels []string) *CategoryMapping {
	m := &CategoryMapping{labels: make([]string, len(labels))}
	copy(m.labels, labels)
	return m
}

// Label returns the label of code.
func (m *CategoryMapping) Label(code int) (string, bool) {
	if m == nil || code < 0 || code >= len(m.labels) {
		return "", false
	}
	return m.labels[code], true
}

// Len returns the number of distinct categories.
func (m *CategoryMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.labels)
}

// Codes returns every code in ascending order.
func (m *CategoryMapping) Codes() []int {
	codes := make([]int, m.Len())
	for i := range codes {
		codes[i] = i
	}
	return codes
}

// Entry is one code/label pair, used when listing or exporting the mapping.
type Entry struct {
	Code  int    `json:"code" yaml:"code" csv:"Code"`
	Label string `json:"label" yaml:"label" csv:"Label"`
}

// Entries returns the mapping as code-ordered pairs.
func (m *CategoryMapping) Entries() []Entry {
	entries := make([]Entry, 0, m.Len())
	for _, code := range m.Codes() {
		entries = append(entries, Entry{Code: code, Label: m.labels[code]})
	}
	return entries
}
