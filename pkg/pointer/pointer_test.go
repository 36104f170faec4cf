// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/flix/pkg/pointer"
)

func TestPointer(t *testing.T) {
	assert.Equal(t, 5, *pointer.To(5))

	var missing *string
	assert.Equal(t, "", pointer.Val(missing))
	assert.Equal(t, "n/a", pointer.Fallback(missing, "n/a"))
	assert.Equal(t, "x", pointer.Fallback(pointer.To("x"), "n/a"))
}
