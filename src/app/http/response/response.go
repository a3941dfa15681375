// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contactbook/src/core/domain"
	"contactbook/src/core/schema"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	Message string `json:"message"`

	// Field is the single field that caused the error, when there is one.
	Field string `json:"field,omitempty"`

	// Fields lists every rejected field of a request body.
	Fields schema.ValidationErrors `json:"fields,omitempty"`

	RequestID string `json:"request_id,omitempty"`
}

// Page wraps one page of a list together with the paging window used.
type Page struct {
	Data   any `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

// Paged sends a 200 response with a page of items.
func Paged(c *gin.Context, data any, count, limit, offset int) {
	c.JSON(http.StatusOK, Page{Data: data, Limit: limit, Offset: offset, Count: count})
}

func abort(c *gin.Context, status int, detail ErrorDetail) {
	c.AbortWithStatusJSON(status, Error{Error: detail})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	abort(c, http.StatusBadRequest, ErrorDetail{
		Code:      "BAD_REQUEST",
		Message:   message,
		RequestID: requestID,
	})
}

// ValidationError sends a 400 response for a single rejected field.
func ValidationError(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusBadRequest, ErrorDetail{
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Field:     field,
		RequestID: requestID,
	})
}

// ValidationErrors sends a 400 response listing every rejected field.
func ValidationErrors(c *gin.Context, errs schema.ValidationErrors, requestID string) {
	abort(c, http.StatusBadRequest, ErrorDetail{
		Code:      "VALIDATION_ERROR",
		Message:   "request validation failed",
		Fields:    errs,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	abort(c, http.StatusNotFound, ErrorDetail{
		Code:      "NOT_FOUND",
		Message:   message,
		RequestID: requestID,
	})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusConflict, ErrorDetail{
		Code:      "CONFLICT",
		Message:   message,
		Field:     field,
		RequestID: requestID,
	})
}

// InternalError sends a 500 response. Details stay in the logs.
func InternalError(c *gin.Context, requestID string) {
	abort(c, http.StatusInternalServerError, ErrorDetail{
		Code:      "INTERNAL_ERROR",
		Message:   "An unexpected error occurred",
		RequestID: requestID,
	})
}

// FromDomainError converts an error returned by a service into an HTTP
// response. Anything that is not a domain error becomes a 500 and is
// attached to the gin context so the logging middleware records it.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var verrs schema.ValidationErrors
	if errors.As(err, &verrs) {
		ValidationErrors(c, verrs, requestID)
		return
	}

	var de *domain.DomainError
	hasDetail := errors.As(err, &de)

	switch {
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		if hasDetail {
			ValidationError(c, de.Field, de.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsConflict(err):
		field, msg := "", err.Error()
		if hasDetail {
			field, msg = de.Field, de.Message
		}
		Conflict(c, field, msg, requestID)
	default:
		_ = c.Error(err)
		InternalError(c, requestID)
	}
}
