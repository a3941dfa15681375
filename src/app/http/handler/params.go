package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactbook/src/app/http/response"
	"contactbook/src/app/middleware"
	"contactbook/src/core/schema"
)

// parseID reads a positive integer path parameter, answering 400 otherwise.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// bindSchema decodes a JSON body into dst and validates it.
func bindSchema(c *gin.Context, dst any) bool {
	requestID := middleware.GetRequestID(c)
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "invalid payload", requestID)
		return false
	}
	if err := schema.Validate(dst); err != nil {
		response.FromDomainError(c, err, requestID)
		return false
	}
	return true
}
