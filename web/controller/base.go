// Package controller provides the HTTP request handlers for the runlog
// web application: login, registration and run management.
package controller

import (
	"net/http"

	"github.com/runlog-app/runlog/database/model"
	"github.com/runlog-app/runlog/web/service"
	"github.com/runlog-app/runlog/web/session"

	"github.com/gin-gonic/gin"
)

const loginUserKey = "login_user"

// BaseController provides common functionality for all controllers,
// including the authentication check middleware.
type BaseController struct {
	userService service.UserService
}

// checkLogin verifies the session and loads the current user into the gin
// context. A session whose user id no longer resolves is cleared and
// treated as logged-out.
func (a *BaseController) checkLogin(c *gin.Context) {
	userId, ok := session.GetLoginUserId(c)
	if ok {
		user, err := a.userService.GetUserById(userId)
		if err == nil {
			c.Set(loginUserKey, user)
			c.Next()
			return
		}
		_ = session.ClearSession(c)
	}

	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
	} else {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
	}
	c.Abort()
}

// loginUser returns the user loaded by checkLogin, or nil.
func loginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(loginUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
