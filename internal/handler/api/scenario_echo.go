package api

import (
	"errors"
	"time"

	"KCScope/internal/domain/history"
	models "KCScope/internal/domain/models"
	"KCScope/internal/domain/scenario"
	"KCScope/internal/service/session"
	"KCScope/internal/usecase"
	xhttp "KCScope/pkg/http"
	xlogger "KCScope/pkg/logger"
	xutil "KCScope/pkg/util"

	"github.com/labstack/echo/v4"
)

// SessionHeader names the request header that selects a history.
const SessionHeader = "X-Session-ID"

const maxSessionIDLen = 128

// ScenarioEchoHandler serves the classifier and per-session history.
type ScenarioEchoHandler struct {
	logger   *xlogger.Logger
	interp   *usecase.Interpreter
	sessions *session.Store
}

func NewScenarioEchoHandler(logger *xlogger.Logger, interp *usecase.Interpreter, sessions *session.Store) *ScenarioEchoHandler {
	return &ScenarioEchoHandler{logger: logger, interp: interp, sessions: sessions}
}

func (h *ScenarioEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/classify/numeric", h.Numeric)
	g.POST("/classify/categorical", h.Categorical)
	g.POST("/classify/slope", h.Slope)
	g.GET("/history", h.History)
	g.DELETE("/history", h.ClearHistory)
	g.GET("/scenarios", h.Scenarios)
}

func (h *ScenarioEchoHandler) Numeric(c echo.Context) error {
	req := &models.NumericRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return h.interpret(c, scenario.NumericInput(scenario.Reading{
		Price:    *req.Price,
		VWAP:     *req.VWAP,
		KCUpper:  *req.KCUpper,
		KCMiddle: *req.KCMiddle,
		KCLower:  *req.KCLower,
	}))
}

func (h *ScenarioEchoHandler) Categorical(c echo.Context) error {
	req := &models.CategoricalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return h.interpret(c, scenario.CategoricalInput(scenario.Selection{
		PriceVWAP:  scenario.PriceVsVWAP(req.PriceVWAP),
		VWAPSlope:  scenario.Slope(req.VWAPSlope),
		KCPosition: scenario.KCZone(req.KCPosition),
		Distance:   scenario.Distance(req.Distance),
	}))
}

func (h *ScenarioEchoHandler) Slope(c echo.Context) error {
	req := &models.SlopeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	var diff float64
	if req.PointsDiff != nil {
		diff = *req.PointsDiff
	}
	return h.interpret(c, scenario.SlopeAwareInput(scenario.SlopeInput{
		PriceVWAP:  scenario.PriceVsVWAP(req.PriceVWAP),
		VWAPSlope:  scenario.Slope(req.VWAPSlope),
		KCPosition: scenario.KCZone(req.KCPosition),
		PointsDiff: diff,
	}))
}

func (h *ScenarioEchoHandler) interpret(c echo.Context, in scenario.Input) error {
	sess, err := h.session(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	var out scenario.Outcome
	sess.Do(func(hist *history.History) {
		out, err = h.interp.Interpret(c.Request().Context(), sess.ID, hist, in)
	})
	if err != nil {
		h.logger.Error("interpret usecase error", xlogger.String("session", sess.ID), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("classification failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *ScenarioEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// report a bad session and a bad since together
	sess, sessErr := h.session(c)
	var since time.Time
	var sinceErr error
	if req.Since != "" {
		t, ok := xutil.ParseTime(req.Since)
		if !ok {
			sinceErr = xhttp.InvalidTimeError("since", req.Since)
		}
		since = t
	}
	if err := errors.Join(sessErr, sinceErr); err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	var rows []history.Entry
	var total int
	sess.Do(func(hist *history.History) {
		total = hist.Len()
		if !since.IsZero() {
			rows = hist.Since(since)
		} else {
			rows = hist.Entries()
		}
	})
	if len(rows) > req.Limit {
		rows = rows[:req.Limit]
	}
	return xhttp.ListResponse(c, rows, int64(total), req.Limit)
}

func (h *ScenarioEchoHandler) ClearHistory(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	var n int
	sess.Do(func(hist *history.History) {
		n = h.interp.Clear(sess.ID, hist)
	})
	return xhttp.ClearedResponse(c, n)
}

func (h *ScenarioEchoHandler) Scenarios(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
	entries := h.interp.Classifier().Table().Entries()
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"categorical": entries,
		"distance":    h.interp.Classifier().Distances(),
	})
}

func (h *ScenarioEchoHandler) session(c echo.Context) (*session.Session, error) {
	id := c.Request().Header.Get(SessionHeader)
	if len(id) > maxSessionIDLen {
		return nil, xhttp.InvalidSessionError(SessionHeader, maxSessionIDLen)
	}
	return h.sessions.Get(id), nil
}
