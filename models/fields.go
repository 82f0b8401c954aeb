package models

import "sort"

func setIfPresent(fields map[string]any, name string, v *string) {
	if v != nil {
		fields[name] = *v
	}
}

// changedFields returns the keys of fields in a stable order.
func changedFields(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
