package controller

import (
	"errors"
	"net/http"

	"github.com/druglens/druglens/database/model"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"

	"github.com/gin-gonic/gin"
)

const adminLogCount = 20

type AdminController struct {
	BaseController

	medicineService service.MedicineService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin")
	g.Use(a.checkLogin)

	g.GET("", a.page)
	g.POST("", a.addMedicine)
}

func (a *AdminController) page(c *gin.Context) {
	html(c, "admin.html", "pages.admin.title", gin.H{
		"logs": logger.GetLogs(adminLogCount, "INFO"),
	})
}

func (a *AdminController) addMedicine(c *gin.Context) {
	m := &model.Medicine{}
	if err := c.ShouldBind(m); err != nil {
		text(c, http.StatusBadRequest, "pages.admin.nameRequired")
		return
	}
	if err := a.medicineService.AddMedicine(m); err != nil {
		if errors.Is(err, service.ErrEmptyMedicineName) {
			text(c, http.StatusBadRequest, "pages.admin.nameRequired")
			return
		}
		logger.Warning("add medicine failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}
	logger.Infof("medicine %d (%s) added, IP: %s", m.Id, m.Name, getRemoteIp(c))
	text(c, http.StatusOK, "pages.admin.added")
}
