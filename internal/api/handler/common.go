package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// getPagination 解析 page / page_size 查询参数
func getPagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// pathID 解析路径上的数字 id，非法时返回 0
func pathID(c *gin.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// isAdmin 当前请求是否带 ADMIN 角色
func isAdmin(c *gin.Context) bool {
	for _, role := range c.GetStringSlice("roles") {
		if role == "ADMIN" {
			return true
		}
	}
	return false
}
