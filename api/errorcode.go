package api

import (
	"github.com/vitalio/triage-api/score"
	"github.com/vitalio/triage-api/store"
	"github.com/vitalio/triage-api/workflow"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: score.ErrNoSamples.Error(),
		1101: workflow.ErrInvalidCoordinates.Error(),

		1200: store.ErrReportNotFound.Error(),
		1201: store.ErrProviderExists.Error(),
		1202: store.ErrProviderNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmptyVitalsWindow  = errorJSON(1100)
	errorInvalidCoordinates = errorJSON(1101)
	errorReportNotFound     = errorJSON(1200)
	errorProviderExists     = errorJSON(1201)
	errorUnknownProvider    = errorJSON(1202)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
