package controller

import (
	"errors"
	"net/http"

	"github.com/runlog-app/runlog/logger"
	"github.com/runlog-app/runlog/web/service"
	"github.com/runlog-app/runlog/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the index, login, logout and registration routes.
type IndexController struct {
	BaseController

	settingService service.SettingService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/logout", a.checkLogin, a.logout)
}

// index redirects to the dashboard for authenticated sessions, otherwise
// to the login page.
func (a *IndexController) index(c *gin.Context) {
	basePath := c.GetString("base_path")
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, basePath+"dashboard")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, basePath+"login")
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard")
		return
	}
	html(c, "login.html", "Log in", nil)
}

// login authenticates the submitted credentials and associates the
// session with the user id. Failures re-render the form with a generic
// message that does not reveal whether the username exists.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Invalid form data")
		html(c, "login.html", "Log in", nil)
		return
	}
	if form.Username == "" || form.Password == "" {
		addFlash(c, flashError, "Invalid credentials")
		html(c, "login.html", "Log in", nil)
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		addFlash(c, flashError, "Invalid credentials")
		html(c, "login.html", "Log in", nil)
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if sessionMaxAge > 0 {
		if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path")+"dashboard")
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a new account. Each validation failure reports the
// specific conflicting field and re-renders the form.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Invalid form data")
		html(c, "register.html", "Register", nil)
		return
	}

	user, err := a.userService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			addFlash(c, flashError, "Please fill in all fields")
		case errors.Is(err, service.ErrUsernameTaken):
			addFlash(c, flashError, "Username already exists")
		case errors.Is(err, service.ErrEmailTaken):
			addFlash(c, flashError, "Email already registered")
		default:
			logger.Warning("register err:", err)
			addFlash(c, flashError, "Registration failed")
		}
		html(c, "register.html", "Register", gin.H{
			"username": form.Username,
			"email":    form.Email,
		})
		return
	}

	logger.Infof("new account %s registered from %s", user.Username, getRemoteIp(c))
	addFlash(c, flashSuccess, "Account created! Please log in.")
	c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
}

// logout clears the session association and redirects to the login page.
func (a *IndexController) logout(c *gin.Context) {
	if user := loginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}
