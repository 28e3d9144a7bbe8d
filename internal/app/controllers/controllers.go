package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/svit/internhub/internal/app/models/dto"
	"github.com/svit/internhub/internal/pkg/listquery"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithField(name).WithDetails(name + " must be a positive number")
		ctx.JSON(400, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// listParams reads the query options shared by every list endpoint
func listParams(ctx *gin.Context) listquery.Params {
	return listquery.ParseParams(
		ctx.Query("search"),
		ctx.Query("sortBy"),
		ctx.Query("sortOrder"),
		ctx.Query("page"),
		ctx.Query("pageSize"),
	)
}
