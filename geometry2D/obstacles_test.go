package geometry2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeContainment(t *testing.T) {
	r := Rectangle{X0: 1, Y0: 1, X1: 3, Y1: 2}
	assert.True(t, r.Contains(2, 1.5))
	assert.False(t, r.Contains(0.5, 1.5))
	assert.False(t, r.Contains(2, 2.5))

	c := Circle{Cx: 2, Cy: 2, R: 1}
	assert.True(t, c.Contains(2.5, 2))
	assert.False(t, c.Contains(3.5, 2))
}

func TestAccessibleMaskOpenDomain(t *testing.T) {
	mask := AccessibleMask(4, 4, 1, nil)
	for _, v := range mask.Data() {
		assert.Equal(t, 1.0, v)
	}
}

func TestAccessibleMaskWithObstacle(t *testing.T) {
	// A rectangle covering the cell centers of rows 1-2, columns 1-2.
	mask := AccessibleMask(4, 4, 1, []Obstacle{Rectangle{X0: 1, Y0: 1, X1: 3, Y1: 3}})
	assert.Equal(t, 0.0, mask.At(1, 1))
	assert.Equal(t, 0.0, mask.At(2, 2))
	assert.Equal(t, 1.0, mask.At(0, 0))
	assert.Equal(t, 1.0, mask.At(3, 3))
}
