package controller

import (
	"errors"
	"net/http"

	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	BaseController

	scanService *service.ScanService
}

func NewScanController(g *gin.RouterGroup, scanService *service.ScanService) *ScanController {
	a := &ScanController{scanService: scanService}
	a.initRouter(g)
	return a
}

func (a *ScanController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/scan")
	g.Use(a.checkLogin)

	g.GET("", a.page)
	g.POST("", a.scan)
}

func (a *ScanController) page(c *gin.Context) {
	html(c, "scan.html", "pages.scan.title", nil)
}

func (a *ScanController) scan(c *gin.Context) {
	if !a.scanService.Enabled() {
		html(c, "scan.html", "pages.scan.title", gin.H{"error_message": I18nWeb(c, "pages.scan.unavailable")})
		return
	}

	file, err := c.FormFile("barcode_image")
	if err != nil {
		htmlStatus(c, http.StatusBadRequest, "scan.html", "pages.scan.title",
			gin.H{"error_message": I18nWeb(c, "pages.scan.missingFile")})
		return
	}
	f, err := file.Open()
	if err != nil {
		logger.Warning("open uploaded image failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}
	defer f.Close()

	userId, _ := session.GetLoginUserId(c)
	result, err := a.scanService.Scan(c.Request.Context(), userId, f)
	data := gin.H{}
	switch {
	case errors.Is(err, service.ErrScanDisabled):
		data["error_message"] = I18nWeb(c, "pages.scan.unavailable")
	case errors.Is(err, service.ErrUnsupportedImage):
		data["error_message"] = I18nWeb(c, "pages.scan.badImage")
	case errors.Is(err, service.ErrNoBarcode):
		data["error_message"] = I18nWeb(c, "pages.scan.noBarcode")
	case err != nil:
		logger.Warning("scan failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	default:
		data["scanned_code"] = result.Code
		if result.Medicine != nil {
			data["result"] = result.Medicine
			data["translated"] = result.Translated
		}
	}
	html(c, "scan.html", "pages.scan.title", data)
}
