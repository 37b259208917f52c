package calculator

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// OverallHTC 总传热系数，两侧对流换热热阻与壁面热阻串联
// 1 / (1/h1 + rWall + 1/h2)
func OverallHTC(h1, h2, rWall float64) (float64, error) {
	if h1 <= 0 || h2 <= 0 {
		return 0, ErrNonPositiveHTC
	}
	if rWall < 0 {
		return 0, ErrNegativeResistance
	}
	return 1 / (1/h1 + rWall + 1/h2), nil
}

// WallResistance 壁面导热热阻, K·m²/W
func WallResistance(thickness, k float64) (float64, error) {
	if thickness <= 0 {
		return 0, ErrNonPositiveThickness
	}
	if k <= 0 {
		return 0, ErrNonPositiveConductivity
	}
	return thickness / k, nil
}
