package geomkit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesic/geomkit"
)

func TestEdgeLength(t *testing.T) {
	a := geomkit.Point3{X: 0, Y: 0, Z: 0}
	b := geomkit.Point3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, geomkit.EdgeLength(a, b), 1e-12)
}

func TestLawOfCosinesAngle_RightTriangle(t *testing.T) {
	// 3-4-5 triangle: angle opposite the hypotenuse is pi/2.
	angle := geomkit.LawOfCosinesAngle(3, 4, 5)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)
}

func TestLawOfCosinesAngle_ClampsNearDegenerate(t *testing.T) {
	// opposite slightly larger than adjacent1+adjacent2 due to FP noise
	// must not panic or produce NaN; it clamps to pi.
	angle := geomkit.LawOfCosinesAngle(1, 1, 2.0000000001)
	require.False(t, math.IsNaN(angle))
	assert.InDelta(t, math.Pi, angle, 1e-4)
}

func TestTriangleArea2_Degenerate(t *testing.T) {
	a := geomkit.Point3{X: 0, Y: 0, Z: 0}
	b := geomkit.Point3{X: 1, Y: 0, Z: 0}
	c := geomkit.Point3{X: 2, Y: 0, Z: 0}
	assert.InDelta(t, 0, geomkit.TriangleArea2(a, b, c), 1e-12)
}
