package response

import (
	"encoding/json"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/logger"
	"net/http"
)

// Envelope is the body shape of every successful response.
type Envelope struct {
	Success    bool             `json:"success"`
	Data       any              `json:"data,omitempty"`
	Message    string           `json:"message,omitempty"`
	Pagination *gDto.Pagination `json:"pagination,omitempty"`
}

// ErrorEnvelope is the body shape of every failed response.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithJSON sends a response containing a JSON object.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithPagination sends a paginated list response.
func WithPagination(writer http.ResponseWriter, code int, jsonPayload any, pagination gDto.Pagination) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload, Pagination: &pagination})
}

// WithError maps a failure to its HTTP status and business error code.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetStatus(err), ErrorEnvelope{
		Error: ErrorBody{
			Code:    failure.GetCode(err),
			Message: err.Error(),
		},
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, ErrorEnvelope{
		Error: ErrorBody{
			Code:    failure.CodeTooManyRequests,
			Message: constant.ResponseErrorRequestLimitExceeded,
		},
	})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
