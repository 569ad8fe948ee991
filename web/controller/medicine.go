package controller

import (
	"errors"
	"net/http"

	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
)

type MedicineController struct {
	BaseController

	medicineService service.MedicineService
}

func NewMedicineController(g *gin.RouterGroup) *MedicineController {
	a := &MedicineController{}
	a.initRouter(g)
	return a
}

func (a *MedicineController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/medicine")
	g.Use(a.checkLogin)

	g.GET("", a.page)
	g.POST("", a.search)
}

func (a *MedicineController) page(c *gin.Context) {
	html(c, "medicine.html", "pages.medicine.title", nil)
}

func (a *MedicineController) search(c *gin.Context) {
	userId, _ := session.GetLoginUserId(c)
	query := c.PostForm("query")

	result, err := a.medicineService.Search(userId, query)
	if err != nil && !errors.Is(err, service.ErrMedicineNotFound) {
		logger.Warning("medicine search failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}

	data := gin.H{
		"query":    query,
		"searched": true,
	}
	if result != nil {
		data["result"] = result
	}
	html(c, "medicine.html", "pages.medicine.title", data)
}
