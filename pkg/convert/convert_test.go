// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flix/pkg/convert"
)

func TestToIntD(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 3},
		{" 7 ", 7},
		{"abc", 3},
		{"-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntD(tt.input, 3))
		})
	}
}

func TestToOptionalInt(t *testing.T) {
	value, err := convert.ToOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = convert.ToOptionalInt("1999")
	require.NoError(t, err)
	assert.Equal(t, 1999, *value)

	_, err = convert.ToOptionalInt("nineteen")
	assert.Error(t, err)
}
