package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/store"
)

func (s *Server) addProvider(c *gin.Context) {
	var provider schema.ProviderRecord
	if err := c.BindJSON(&provider); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if provider.ID == "" || provider.Name == "" || provider.Specialty == "" ||
		!provider.Coordinates().Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.AddProvider(c.Request.Context(), provider); err != nil {
		if err == store.ErrProviderExists {
			abortWithEncoding(c, http.StatusConflict, errorProviderExists, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}

type availabilityParams struct {
	Available *bool `json:"availability" binding:"required"`
}

func (s *Server) updateProviderAvailability(c *gin.Context) {
	var params availabilityParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.mongoStore.UpdateProviderAvailability(c.Request.Context(), c.Param("providerID"), *params.Available)
	if err != nil {
		if err == store.ErrProviderNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownProvider, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}
