package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/runlog-app/runlog/config"
	"github.com/runlog-app/runlog/logger"
	"github.com/runlog-app/runlog/web/entity"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashError   = "error"
	flashSuccess = "success"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// addFlash queues a flash message of the given category for the next render.
func addFlash(c *gin.Context, category string, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg, category)
	if err := s.Save(); err != nil {
		logger.Warning("unable to save flash message:", err)
	}
}

// pureJsonMsg sends a pure JSON message response with custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders an HTML template with the provided data and title. Pending
// flash messages and the logged-in user are injected into the template data.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	if user := loginUser(c); user != nil {
		data["login_user"] = user
	}

	s := sessions.Default(c)
	data["errors"] = s.Flashes(flashError)
	data["notices"] = s.Flashes(flashSuccess)
	if err := s.Save(); err != nil {
		logger.Warning("unable to save session after reading flashes:", err)
	}

	c.HTML(http.StatusOK, name, getContext(data))
}

// getContext adds version info to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
