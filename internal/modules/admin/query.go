package admin

import (
	"github.com/gin-gonic/gin"

	"techrent/internal/listing"
	"techrent/internal/repository"
)

func params(c *gin.Context) listing.Params {
	return listing.Params(c.Request.URL.Query())
}

func queryPage(c *gin.Context) (page, pageSize int) {
	return params(c).Page()
}

func equipmentFilterFromQuery(c *gin.Context) repository.EquipmentFilter {
	return repository.EquipmentFilterFromParams(params(c))
}

func categoryFilterFromQuery(c *gin.Context) repository.CategoryFilter {
	return repository.CategoryFilterFromParams(params(c))
}

func userFilterFromQuery(c *gin.Context) repository.UserFilter {
	return repository.UserFilterFromParams(params(c))
}

func reviewFilterFromQuery(c *gin.Context) repository.ReviewFilter {
	return repository.ReviewFilterFromParams(params(c))
}
