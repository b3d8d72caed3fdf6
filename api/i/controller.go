package i

import "github.com/gin-gonic/gin"

// Implemented by every group of API routes.
type Controller interface {
	Register(*gin.RouterGroup)
}
