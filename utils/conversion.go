package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// IDsToStrings converts numeric IDs to the string form used by multi-select inputs.
func IDsToStrings(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}

// StringsToIDs converts multi-select string values back to numeric IDs.
// Blank entries are skipped.
func StringsToIDs(values []string) ([]int64, error) {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", v)
		}
		out = append(out, id)
	}
	return out, nil
}

// ParseIDList parses a comma separated query value such as "1,2,3".
func ParseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	return StringsToIDs(strings.Split(raw, ","))
}
