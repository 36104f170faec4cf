// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Do not use it where a malformed value must be told apart from a missing one;
call [strconv] directly and report the error instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts str to an int, returning def if str is blank or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToOptionalInt converts str to an int. Blank input yields (nil, nil).
func ToOptionalInt(str string) (*int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(str)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
