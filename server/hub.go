package server

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"hxforge/calculator"
	"hxforge/deque"
	"hxforge/model"
)

// Hub serves one websocket connection: it decodes requests, runs the
// calculator and queues replies for the writer goroutine.
type Hub struct {
	cfg     calculator.Config
	conn    *websocket.Conn
	history deque.Deque
	now     func() time.Time
	// request, raw frames in arrival order
	msg chan []byte
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(cfg calculator.Config) *Hub {
	return &Hub{
		cfg:     cfg,
		history: deque.NewListDeque(cfg.Server.HistorySize),
		now:     time.Now,
		msg:     make(chan []byte, 10),
		reply:   make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

// 唯一写连接的 goroutine
func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).WithField("type", reply.Type).Error("write reply")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case data := <-h.msg:
			h.send(h.handle(data))
		case <-h.done:
			return
		}
	}
}

func (h *Hub) send(reply model.Msg) {
	select {
	case h.reply <- reply:
	case <-h.done:
	}
}

// 解码失败也在这里回复，保证回复顺序与请求顺序一致
func (h *Hub) handle(data []byte) model.Msg {
	var msg model.Msg
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMsg(err)
	}
	return h.dispatch(msg)
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeLMTD:
		var req model.LMTDReq
		if err := decodeContent(msg.Content, &req); err != nil {
			return errorMsg(err)
		}
		return encode(model.TypeLMTDResult, h.calculateLMTD(req))
	case model.TypeExchanger:
		var req model.ExchangerReq
		if err := decodeContent(msg.Content, &req); err != nil {
			return errorMsg(err)
		}
		return encode(model.TypeExchangerResult, h.calculateExchanger(req))
	case model.TypeDefaults:
		return encode(model.TypeDefaults, h.defaults())
	case model.TypeHistory:
		return encode(model.TypeHistory, h.historyList())
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{
			Type:    model.TypeError,
			Content: "no such type: " + msg.Type,
		}
	}
}

func (h *Hub) calculateLMTD(req model.LMTDReq) model.HeatLoadResult {
	if !req.Complete() {
		return model.HeatLoadResult{Display: model.MissingInputs}
	}
	u, area, dt1, dt2 := *req.U, *req.Area, *req.DeltaT1, *req.DeltaT2
	res := newResult(calculator.HeatLoadLMTD(u, area, dt1, dt2))
	h.record(model.TypeLMTD, u, area, dt1, dt2, res)
	return res
}

func (h *Hub) calculateExchanger(req model.ExchangerReq) model.HeatLoadResult {
	if !req.Complete() {
		return model.HeatLoadResult{Display: model.MissingInputs}
	}
	ex := calculator.Exchanger{
		HTCExternal:      *req.HTCExternal,
		HTCInternal:      *req.HTCInternal,
		WallConductivity: *req.WallConductivity,
		Tube: calculator.TubeGeometry{
			Length:        *req.TubeLength,
			OuterDiameter: *req.TubeOuterDiameter,
			InnerDiameter: *req.TubeInnerDiameter,
		},
	}
	dt1, dt2 := *req.DeltaT1, *req.DeltaT2
	u, area, err := ex.Coefficients()
	if err != nil {
		log.WithError(err).Warn("exchanger rejected")
		return model.HeatLoadResult{
			Display: "Error: " + err.Error(),
			Error:   err.Error(),
		}
	}
	res := newResult(calculator.HeatLoadLMTD(u, area, dt1, dt2))
	h.record(model.TypeExchanger, u, area, dt1, dt2, res)
	return res
}

// 新记录放在队头，满了丢弃最旧的
func (h *Hub) record(kind string, u, area, dt1, dt2 float64, res model.HeatLoadResult) {
	log.WithFields(log.Fields{
		"kind":    kind,
		"u":       u,
		"area":    area,
		"deltaT1": dt1,
		"deltaT2": dt2,
		"q":       res.Display,
	}).Info("heat load calculated")

	if h.history.IsFull() {
		h.history.RemoveLast()
	}
	h.history.AddFirst(model.Calculation{
		Kind:    kind,
		U:       u,
		Area:    area,
		DeltaT1: dt1,
		DeltaT2: dt2,
		Q:       res.Q,
		Display: res.Display,
		At:      h.now(),
	})
}

func (h *Hub) historyList() []model.Calculation {
	list := make([]model.Calculation, 0, h.history.Size())
	h.history.Traverse(func(_ int, item model.Calculation) {
		list = append(list, item)
	})
	return list
}

func (h *Hub) defaults() model.Defaults {
	d, ex := h.cfg.Defaults, h.cfg.Exchanger
	return model.Defaults{
		U:                 d.U,
		Area:              d.Area,
		DeltaT1:           d.DeltaT1,
		DeltaT2:           d.DeltaT2,
		HTCExternal:       ex.HTCExternal,
		HTCInternal:       ex.HTCInternal,
		WallConductivity:  ex.WallConductivity,
		TubeLength:        ex.Tube.Length,
		TubeOuterDiameter: ex.Tube.OuterDiameter,
		TubeInnerDiameter: ex.Tube.InnerDiameter,
	}
}

// NaN/Inf 无法用 JSON 表示，只保留 Display
func newResult(q float64) model.HeatLoadResult {
	res := model.HeatLoadResult{Display: calculator.FormatWatts(q)}
	if !math.IsNaN(q) && !math.IsInf(q, 0) {
		res.Q = &q
	}
	return res
}

// 空内容视为所有字段均未填写
func decodeContent(content string, v interface{}) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	return json.Unmarshal([]byte(content), v)
}

func encode(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{
		Type:    typ,
		Content: string(data),
	}
}

func errorMsg(err error) model.Msg {
	log.WithError(err).Warn("bad request")
	return model.Msg{
		Type:    model.TypeError,
		Content: err.Error(),
	}
}
