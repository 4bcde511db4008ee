package routes

import (
	"quizhub/controllers"

	"github.com/gin-gonic/gin"
)

func CreateQuizRouteHandler(ctx *gin.Context) {
	controllers.CreateQuiz(ctx)
}

func GenerateQuizRouteHandler(ctx *gin.Context) {
	controllers.GenerateQuiz(ctx)
}

func ListQuizzesRouteHandler(ctx *gin.Context) {
	controllers.ListQuizzes(ctx)
}

func GetQuizRouteHandler(ctx *gin.Context) {
	controllers.GetQuiz(ctx)
}

func DeleteQuizRouteHandler(ctx *gin.Context) {
	controllers.DeleteQuiz(ctx)
}

func SubmitQuizRouteHandler(ctx *gin.Context) {
	controllers.SubmitQuiz(ctx)
}

func GetMyResultsRouteHandler(ctx *gin.Context) {
	controllers.GetMyResults(ctx)
}
