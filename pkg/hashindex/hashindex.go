package hashindex

func New() *Index {
	return &Index{
		entries: make(map[string]string),
	}
}

// Add records path as the original for digest if the digest has not been
// seen before. When the digest is already indexed, the stored original is
// returned with existing=true and the index is left untouched, so every
// later duplicate of the same content points at the single first-seen path.
func (i *Index) Add(digest string, path string) (original string, existing bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if original, existing = i.entries[digest]; existing {
		return original, true
	}

	i.entries[digest] = path
	return path, false
}

// Original returns the first-seen path for digest, if any.
func (i *Index) Original(digest string) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	path, ok := i.entries[digest]
	return path, ok
}

func (i *Index) Length() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries)
}
