package helpers

// UniqueIDs returns the non-empty ids in first-seen order without duplicates
func UniqueIDs(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// StringPtr returns nil for an empty string, otherwise a pointer to a copy
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
