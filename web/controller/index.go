package controller

import (
	"errors"
	"net/http"

	"github.com/druglens/druglens/config"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/service"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
)

// CredentialsForm is posted by both the signup and the login page.
type CredentialsForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController serves the home page and the account routes.
type IndexController struct {
	BaseController

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/signup", a.signupPage)
	g.POST("/signup", a.signup)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	html(c, "home.html", "pages.home.title", nil)
}

func (a *IndexController) signupPage(c *gin.Context) {
	html(c, "signup.html", "pages.signup.title", nil)
}

func (a *IndexController) signup(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		text(c, http.StatusBadRequest, "pages.signup.empty")
		return
	}

	user, err := a.userService.Signup(form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrEmptyCredentials):
		text(c, http.StatusBadRequest, "pages.signup.empty")
		return
	case errors.Is(err, service.ErrEmailExists):
		text(c, http.StatusConflict, "pages.signup.emailExists")
		return
	case err != nil:
		logger.Warning("signup failed:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}

	logger.Infof("user %d signed up, IP: %s", user.Id, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/login")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "pages.login.title", nil)
}

func (a *IndexController) login(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		text(c, http.StatusUnauthorized, "pages.login.invalid")
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login, IP: %s", getRemoteIp(c))
		text(c, http.StatusUnauthorized, "pages.login.invalid")
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("Unable to save session:", err)
		text(c, http.StatusInternalServerError, "common.error")
		return
	}

	logger.Infof("user %d logged in, IP: %s", user.Id, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/")
}

func (a *IndexController) logout(c *gin.Context) {
	if id, ok := session.GetLoginUserId(c); ok {
		logger.Infof("user %d logged out", id)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
