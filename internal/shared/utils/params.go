package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/shared/errors"
)

// ParseIDParam parses a positive numeric path parameter.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewBadRequestError("invalid " + entityName + " ID")
	}
	return uint(n), nil
}

// ParseOptionalUintQuery parses an optional numeric query parameter.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.NewBadRequestError("invalid " + key)
	}
	v := uint(n)
	return &v, nil
}
