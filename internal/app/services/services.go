package services

import (
	"sort"
	"strings"
)

// casMaxAttempts bounds the retry loop around version-checked writes. The
// store has no transactions, so every read-modify-write path re-reads and
// retries when another writer got there first.
const casMaxAttempts = 5

// Connection-graph sets are persisted sorted so writes are canonical
// regardless of operation order. Membership lists on groups, rides, and
// events stay in arrival order; those check with inList and append.

func containsString(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}

func addString(list []string, s string) []string {
	i := sort.SearchStrings(list, s)
	if i < len(list) && list[i] == s {
		return list
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}

func removeString(list []string, s string) []string {
	i := sort.SearchStrings(list, s)
	if i < len(list) && list[i] == s {
		return append(list[:i], list[i+1:]...)
	}
	return list
}

// hasRecordPrefix reports whether id sits in the keyspace for its record
// type. Path parameters double as store keys, so an id outside the expected
// keyspace must read as unknown instead of loading a foreign record.
func hasRecordPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix)
}

func inList(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
