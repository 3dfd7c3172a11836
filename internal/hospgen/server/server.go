// Package server exposes the control-panel JSON API: trigger a historic run,
// start and stop the live feed, probe the database and poll run status.
package server

import (
	"fmt"
	"net/http"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/run"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sink"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

// Handler serves the control-panel endpoints.
type Handler struct {
	historic *run.Historic
	live     *run.Live
	store    *status.Store
	dbCfg    config.DBCfg
}

func NewHandler(historic *run.Historic, live *run.Live, store *status.Store, dbCfg config.DBCfg) *Handler {
	return &Handler{historic: historic, live: live, store: store, dbCfg: dbCfg}
}

// New builds the echo instance with all routes registered.
func New(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes registers the control-panel endpoints.
//
//	GET  /status          - current run status, {"status":"idle"} before any run
//	POST /api/generate    - run a historic generation synchronously
//	POST /api/live/start  - start the live feed worker
//	POST /api/live/stop   - stop the live feed worker
//	POST /api/db/test     - probe the configured database
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.Status)
	e.POST("/api/generate", h.Generate)
	e.POST("/api/live/start", h.LiveStart)
	e.POST("/api/live/stop", h.LiveStop)
	e.POST("/api/db/test", h.DBTest)
}

// Status handles GET /status.
func (h *Handler) Status(c echo.Context) error {
	rec, ok := h.store.Snapshot()
	if !ok {
		return c.JSON(http.StatusOK, map[string]string{"status": "idle"})
	}
	return c.JSON(http.StatusOK, rec)
}

type generateRequest struct {
	StartDate   string `json:"start_date" form:"start_date"`
	EndDate     string `json:"end_date" form:"end_date"`
	NumPatients int    `json:"num_patients" form:"num_patients"`
}

// Generate handles POST /api/generate. The run executes synchronously;
// long-running progress is observable through /status from another client.
func (h *Handler) Generate(c echo.Context) error {
	req := generateRequest{
		StartDate:   "2020-01-01",
		EndDate:     "2024-12-31",
		NumPatients: 5000,
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request: " + err.Error(),
		})
	}

	start, err := dateparse.ParseAny(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("invalid start_date %q: %v", req.StartDate, err),
		})
	}
	end, err := dateparse.ParseAny(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("invalid end_date %q: %v", req.EndDate, err),
		})
	}

	params := run.Params{Start: start, End: end, Patients: req.NumPatients}
	if err := params.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	summary, err := h.historic.Run(c.Request().Context(), params)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "generation failed: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"run_id":       summary.RunID,
		"patients":     summary.Patients,
		"admissions":   summary.Admissions,
		"labs":         summary.Labs,
		"diagnostics":  summary.Diagnostics,
		"medications":  summary.Medications,
		"revenue_rows": summary.RevenueRows,
		"files":        len(summary.Files),
	})
}

// LiveStart handles POST /api/live/start.
func (h *Handler) LiveStart(c echo.Context) error {
	if !h.live.Start() {
		return c.JSON(http.StatusOK, map[string]string{"live": "already-running"})
	}
	return c.JSON(http.StatusOK, map[string]string{"live": "started"})
}

// LiveStop handles POST /api/live/stop.
func (h *Handler) LiveStop(c echo.Context) error {
	if !h.live.Stop() {
		return c.JSON(http.StatusOK, map[string]string{"live": "not-running"})
	}
	return c.JSON(http.StatusOK, map[string]string{"live": "stopped"})
}

// DBTest handles POST /api/db/test. It opens a fresh connection and probes
// it, reporting the outcome both in the response and the status record.
func (h *Handler) DBTest(c echo.Context) error {
	db, err := sink.Connect(c.Request().Context(), h.dbCfg)
	connected := err == nil
	h.store.Update(func(r *status.Record) {
		r.DBURL = sink.DisplayURL(h.dbCfg)
		r.DBConnected = &connected
		if err != nil {
			r.DBError = err.Error()
		} else {
			r.DBError = ""
		}
	})
	if err != nil {
		logger.L().Warnw("database probe failed", "err", err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"connected": false,
			"error":     err.Error(),
		})
	}
	db.Close()
	return c.JSON(http.StatusOK, map[string]interface{}{"connected": true})
}
