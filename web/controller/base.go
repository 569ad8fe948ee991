// Package controller holds the gin handlers of the DrugLens web pages.
package controller

import (
	"net/http"

	"github.com/druglens/druglens/web/locale"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the login check shared by the page controllers.
type BaseController struct{}

// checkLogin redirects anonymous page requests to /login and answers AJAX
// requests with 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.loginAgain"))
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb localises name for the language of the current request.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	return locale.I18n(locale.FromContext(c), name, params...)
}
