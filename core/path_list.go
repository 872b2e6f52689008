package core

import "strings"

const pathListSeparator = ";"

// normalizePathEntry folds the differences Windows ignores when resolving a
// directory: case, slash direction, surrounding quotes and trailing separators.
func normalizePathEntry(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.Trim(entry, `"`)
	entry = strings.ReplaceAll(entry, "/", `\`)
	entry = strings.TrimRight(entry, `\`)
	return strings.ToLower(entry)
}

func samePath(a, b string) bool {
	return normalizePathEntry(a) == normalizePathEntry(b)
}

func pathListContains(list, directory string) bool {
	target := normalizePathEntry(directory)
	for _, segment := range strings.Split(list, pathListSeparator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if normalizePathEntry(segment) == target {
			return true
		}
	}
	return false
}

// appendPathEntry returns list with directory appended, or list unchanged
// (and false) when an equivalent entry is already present.
func appendPathEntry(list, directory string) (string, bool) {
	if pathListContains(list, directory) {
		return list, false
	}
	if list == "" || strings.HasSuffix(list, pathListSeparator) {
		return list + directory, true
	}
	return list + pathListSeparator + directory, true
}
