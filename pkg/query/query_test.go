// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/flix/pkg/query"
)

func TestIntSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2, 9}, query.IntSlice([]string{"1, 2", "x", "9"}))
	assert.Empty(t, query.IntSlice(nil))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, query.StringSlice(" a ,, b "))
	assert.Nil(t, query.StringSlice(""))
}
