package routes

import (
	"quizhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(ctx *gin.Context) {
	controllers.GetProfile(ctx)
}

func UpdateProfileRouteHandler(ctx *gin.Context) {
	controllers.UpdateProfile(ctx)
}

func GetUserStatsRouteHandler(ctx *gin.Context) {
	controllers.GetUserStats(ctx)
}

func GetUserBadgesRouteHandler(ctx *gin.Context) {
	controllers.GetUserBadges(ctx)
}
