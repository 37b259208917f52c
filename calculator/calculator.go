package calculator

import "math"

// EqualDeltaTolerance 两端温差之差小于该值时视为相等
const EqualDeltaTolerance = 1e-12

// LMTD returns the log mean temperature difference of the two end deltas.
// When the deltas are equal within EqualDeltaTolerance the limit value
// deltaT1 is returned instead of evaluating 0/ln(1).
// No domain check is done: a non-positive ratio yields NaN or Inf.
func LMTD(deltaT1, deltaT2 float64) float64 {
	if math.Abs(deltaT1-deltaT2) < EqualDeltaTolerance {
		return deltaT1
	}
	return (deltaT1 - deltaT2) / math.Log(deltaT1/deltaT2)
}

// HeatLoadLMTD 对数平均温差法计算换热量 Q = U * A * LMTD
//  u:       总传热系数, W/(m²·K)
//  area:    换热面积, m²
//  deltaT1: 一端温差, K
//  deltaT2: 另一端温差, K
// It never fails and is safe for concurrent use.
func HeatLoadLMTD(u, area, deltaT1, deltaT2 float64) float64 {
	return u * area * LMTD(deltaT1, deltaT2)
}
