package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/snapwall/snapwall/utils"
)

// HomeController serves the unauthenticated smoke-test endpoints.
type HomeController struct{}

// NewHomeController creates a new HomeController instance.
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Greet says hello.
func (h *HomeController) Greet(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"message": fmt.Sprintf("Hello %s!", ctx.Param("name"))})
}

// Test is a plain liveness probe.
func (h *HomeController) Test(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"message": "Testing"})
}
