package usecase

import "strings"

// joinWithAnd joins names with comma-and-"and" grammar: "A, B and C".
// A single item returns itself; empty input returns "".
func joinWithAnd(items []string) string {
	list := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			list = append(list, it)
		}
	}
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0]
	default:
		return strings.Join(list[:len(list)-1], ", ") + " and " + list[len(list)-1]
	}
}

// dedupe removes duplicates and blanks, keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// appendField appends " | value" (or a custom separator) when value is
// non-empty.
func appendField(b *strings.Builder, sep, value string) {
	if value == "" {
		return
	}
	b.WriteString(sep)
	b.WriteString(value)
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// containsAllWords reports whether every needle occurs in hay. Vacuously true
// for an empty needle list.
func containsAllWords(hay string, needles []string) bool {
	for _, n := range needles {
		if !strings.Contains(hay, n) {
			return false
		}
	}
	return true
}

func containsAnyWord(hay string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(hay, n) {
			return true
		}
	}
	return false
}
