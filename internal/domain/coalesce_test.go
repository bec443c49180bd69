package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSet(t *testing.T) {
	uniform, packing := 25.0, 30.0

	assert.Equal(t, 30.0, FirstSet(0, &packing, &uniform))
	assert.Equal(t, 25.0, FirstSet(0, nil, &uniform))
	assert.Equal(t, 0.0, FirstSet[float64](0, nil, nil))
	assert.Equal(t, 2, FirstSet(2))
}
