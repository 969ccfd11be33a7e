package router

// History is a browser-style stack of visited fragments.
type History struct {
	entries []string
	index   int
}

func NewHistory(initial string) *History {
	return &History{entries: []string{initial}}
}

// Push discards any forward entries and appends path.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.index+1], path)
	h.index++
}

// Replace overwrites the current entry.
func (h *History) Replace(path string) {
	h.entries[h.index] = path
}

// Back moves to the previous entry. It returns false at the start.
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

func (h *History) Current() string { return h.entries[h.index] }

// Len is the number of entries, including any forward entries.
func (h *History) Len() int { return len(h.entries) }
