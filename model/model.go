package model

import "time"

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// LMTDReq 对数平均温差法计算请求，字段为空代表前端未填写
type LMTDReq struct {
	U       *float64 `json:"u"`
	Area    *float64 `json:"area"`
	DeltaT1 *float64 `json:"delta_t1"`
	DeltaT2 *float64 `json:"delta_t2"`
}

func (r LMTDReq) Complete() bool {
	return r.U != nil && r.Area != nil && r.DeltaT1 != nil && r.DeltaT2 != nil
}

// ExchangerReq 根据换热管参数计算
type ExchangerReq struct {
	HTCExternal       *float64 `json:"htc_ext"`
	HTCInternal       *float64 `json:"htc_int"`
	WallConductivity  *float64 `json:"wall_conductivity"`
	TubeLength        *float64 `json:"tube_length"`
	TubeOuterDiameter *float64 `json:"tube_outer_diameter"`
	TubeInnerDiameter *float64 `json:"tube_inner_diameter"`
	DeltaT1           *float64 `json:"delta_t1"`
	DeltaT2           *float64 `json:"delta_t2"`
}

func (r ExchangerReq) Complete() bool {
	for _, v := range []*float64{
		r.HTCExternal, r.HTCInternal, r.WallConductivity,
		r.TubeLength, r.TubeOuterDiameter, r.TubeInnerDiameter,
		r.DeltaT1, r.DeltaT2,
	} {
		if v == nil {
			return false
		}
	}
	return true
}

// HeatLoadResult Q 为 NaN/Inf 时不返回数值，只返回 Display
type HeatLoadResult struct {
	Q       *float64 `json:"q,omitempty"`
	Display string   `json:"display"`
	Error   string   `json:"error,omitempty"`
}

// Defaults 表单默认值
type Defaults struct {
	U                 float64 `json:"u"`
	Area              float64 `json:"area"`
	DeltaT1           float64 `json:"delta_t1"`
	DeltaT2           float64 `json:"delta_t2"`
	HTCExternal       float64 `json:"htc_ext"`
	HTCInternal       float64 `json:"htc_int"`
	WallConductivity  float64 `json:"wall_conductivity"`
	TubeLength        float64 `json:"tube_length"`
	TubeOuterDiameter float64 `json:"tube_outer_diameter"`
	TubeInnerDiameter float64 `json:"tube_inner_diameter"`
}

// Calculation 一次成功计算的记录
type Calculation struct {
	Kind    string    `json:"kind"`
	U       float64   `json:"u"`
	Area    float64   `json:"area"`
	DeltaT1 float64   `json:"delta_t1"`
	DeltaT2 float64   `json:"delta_t2"`
	Q       *float64  `json:"q,omitempty"`
	Display string    `json:"display"`
	At      time.Time `json:"at"`
}
