package calculator

import (
	"fmt"
	"math"
)

// TubeGeometry 换热管尺寸，单位m
type TubeGeometry struct {
	Length        float64
	OuterDiameter float64
	InnerDiameter float64
}

func DefaultTubeGeometry() TubeGeometry {
	return TubeGeometry{
		Length:        1,
		OuterDiameter: 0.01,
		InnerDiameter: 0.009,
	}
}

func (g TubeGeometry) Validate() error {
	switch {
	case g.Length <= 0:
		return fmt.Errorf("%w: length %g", ErrBadGeometry, g.Length)
	case g.OuterDiameter <= 0:
		return fmt.Errorf("%w: outer diameter %g", ErrBadGeometry, g.OuterDiameter)
	case g.InnerDiameter <= 0:
		return fmt.Errorf("%w: inner diameter %g", ErrBadGeometry, g.InnerDiameter)
	case g.InnerDiameter >= g.OuterDiameter:
		return fmt.Errorf("%w: inner diameter %g not below outer diameter %g",
			ErrBadGeometry, g.InnerDiameter, g.OuterDiameter)
	}
	return nil
}

// WallThickness 管壁厚度
func (g TubeGeometry) WallThickness() float64 {
	return (g.OuterDiameter - g.InnerDiameter) / 2
}

// OuterArea 管外表面积 π·OD·L
func (g TubeGeometry) OuterArea() float64 {
	return math.Pi * g.OuterDiameter * g.Length
}

// Exchanger describes a single tube exchanger by its film coefficients,
// wall material and tube size. U and A are derived from these and fed to
// HeatLoadLMTD.
type Exchanger struct {
	HTCExternal      float64 // 管外对流换热系数, W/(m²·K)
	HTCInternal      float64 // 管内对流换热系数, W/(m²·K)
	WallConductivity float64 // 管壁导热系数, W/(m·K)
	Tube             TubeGeometry
}

// OverallHTC combines both films and the plane wall resistance of the tube.
func (e Exchanger) OverallHTC() (float64, error) {
	if err := e.Tube.Validate(); err != nil {
		return 0, err
	}
	rWall, err := WallResistance(e.Tube.WallThickness(), e.WallConductivity)
	if err != nil {
		return 0, err
	}
	return OverallHTC(e.HTCExternal, e.HTCInternal, rWall)
}

func (e Exchanger) Area() (float64, error) {
	if err := e.Tube.Validate(); err != nil {
		return 0, err
	}
	return e.Tube.OuterArea(), nil
}

// Coefficients returns U and A after a single validation pass.
func (e Exchanger) Coefficients() (u, area float64, err error) {
	u, err = e.OverallHTC()
	if err != nil {
		return 0, 0, err
	}
	return u, e.Tube.OuterArea(), nil
}

// HeatLoad 计算换热量，温差不做校验，直接交给 HeatLoadLMTD
func (e Exchanger) HeatLoad(deltaT1, deltaT2 float64) (float64, error) {
	u, area, err := e.Coefficients()
	if err != nil {
		return 0, err
	}
	return HeatLoadLMTD(u, area, deltaT1, deltaT2), nil
}
