// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-valued URL query parameters.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses every value into an integer. Each value may itself be a
// comma-separated list ("?ids=1,2&ids=9"). Invalid entries are skipped.
func IntSlice(vals []string) []int {
	res := make([]int, 0, len(vals))
	for _, v := range vals {
		for _, part := range StringSlice(v) {
			if i, err := strconv.Atoi(part); err == nil {
				res = append(res, i)
			}
		}
	}
	return res
}

// StringSlice splits a comma-separated value into trimmed, non-empty parts.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}

	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
