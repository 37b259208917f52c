package model

// 消息类型
const (
	TypeLMTD      = "lmtd"
	TypeExchanger = "exchanger"
	TypeDefaults  = "defaults"
	TypeHistory   = "history"

	TypeLMTDResult      = "lmtdResult"
	TypeExchangerResult = "exchangerResult"
	TypeError           = "error"
)

// MissingInputs 输入不完整时返回给前端的提示
const MissingInputs = "Please fill in all inputs."
