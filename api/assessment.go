package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/score"
	"github.com/vitalio/triage-api/store"
	"github.com/vitalio/triage-api/workflow"
)

type assessmentRequest struct {
	Customer         schema.CustomerProfile `json:"customer" binding:"required"`
	Vitals           []schema.VitalsSample  `json:"vitals"`
	Specialty        string                 `json:"specialty"`
	MaxDistanceKM    float64                `json:"max_distance_km"`
	RequireAvailable *bool                  `json:"require_available"`
}

func (s *Server) createAssessment(c *gin.Context) {
	var params assessmentRequest
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Customer.ID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requireAvailable := true
	if params.RequireAvailable != nil {
		requireAvailable = *params.RequireAvailable
	}

	runID := uuid.New().String()
	runLog := log.WithField("run_id", runID).WithField("customer_id", params.Customer.ID)
	runLog.Info("assessment run started")

	result, err := s.pipeline.Run(c.Request.Context(), workflow.Request{
		Customer:         params.Customer,
		Samples:          params.Vitals,
		Specialty:        params.Specialty,
		MaxDistanceKM:    params.MaxDistanceKM,
		RequireAvailable: requireAvailable,
	})
	if err != nil {
		switch err {
		case score.ErrNoSamples:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyVitalsWindow, err)
		case workflow.ErrInvalidCoordinates:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates, err)
		default:
			runLog.Error(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	runLog.WithField("report_id", result.Report.ID).Info("assessment run finished")

	c.JSON(http.StatusOK, gin.H{
		"report":   result.Report,
		"rendered": result.Rendered,
		"degraded": result.Degraded,
	})
}

func (s *Server) getReport(c *gin.Context) {
	if s.archive == nil {
		abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		return
	}

	record, err := s.archive.GetReport(c.Param("reportID"))
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
