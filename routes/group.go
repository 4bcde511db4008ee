package routes

import (
	"quizhub/controllers"

	"github.com/gin-gonic/gin"
)

func CreateGroupRouteHandler(ctx *gin.Context) {
	controllers.CreateGroup(ctx)
}

func JoinGroupRouteHandler(ctx *gin.Context) {
	controllers.JoinGroup(ctx)
}

func GetGroupRouteHandler(ctx *gin.Context) {
	controllers.GetGroup(ctx)
}

func GetGroupBadgesRouteHandler(ctx *gin.Context) {
	controllers.GetGroupBadges(ctx)
}

func GetGroupLeaderboardRouteHandler(ctx *gin.Context) {
	controllers.GetGroupLeaderboard(ctx)
}
