package routes

import (
	"quizhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetLeaderboardRouteHandler(ctx *gin.Context) {
	controllers.GetLeaderboard(ctx)
}
