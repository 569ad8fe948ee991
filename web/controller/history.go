package controller

import (
	"net/http"

	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	BaseController

	historyService service.HistoryService
}

func NewHistoryController(g *gin.RouterGroup) *HistoryController {
	a := &HistoryController{}
	a.initRouter(g)
	return a
}

func (a *HistoryController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/history")
	g.Use(a.checkLogin)

	g.GET("", a.history)
}

func (a *HistoryController) history(c *gin.Context) {
	userId, _ := session.GetLoginUserId(c)
	records, err := a.historyService.GetUserHistory(userId)
	if err != nil {
		logger.Warning("load history failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}
	html(c, "history.html", "pages.history.title", gin.H{"records": records})
}
