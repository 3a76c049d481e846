package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/runlog-app/runlog/database"
	"github.com/runlog-app/runlog/logger"
	"github.com/runlog-app/runlog/util/common"
	"github.com/runlog-app/runlog/web/entity"
	"github.com/runlog-app/runlog/web/service"

	"github.com/gin-gonic/gin"
)

const dateFormat = "2006-01-02"

// AddRunForm represents the add-run request structure.
type AddRunForm struct {
	Date     string `json:"date" form:"date"`
	Distance string `json:"distance" form:"distance"`
	Duration string `json:"duration" form:"duration"`
}

// RunController handles the dashboard and run management routes.
type RunController struct {
	BaseController

	settingService service.SettingService
	runService     service.RunService
}

// NewRunController creates a new RunController and initializes its routes.
func NewRunController(g *gin.RouterGroup) *RunController {
	a := &RunController{}
	a.initRouter(g)
	return a
}

func (a *RunController) initRouter(g *gin.RouterGroup) {
	g.GET("/dashboard", a.checkLogin, a.dashboard)
	g.POST("/add", a.checkLogin, a.addRun)
	g.POST("/delete/:id", a.checkLogin, a.delRun)
	g.GET("/runs-data", a.checkLogin, a.runsData)

	// Run detail pages are public, matching the upstream behavior.
	g.GET("/run/:id", a.runDetail)
}

// dashboard renders the current user's runs (newest first) together with
// the cross-user leaderboard.
func (a *RunController) dashboard(c *gin.Context) {
	user := loginUser(c)

	runs, err := a.runService.GetRunsByUser(user.Id)
	if err != nil {
		logger.Warning("load runs err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	leaderboard, err := a.runService.Leaderboard()
	if err != nil {
		logger.Warning("load leaderboard err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	html(c, "dashboard.html", "Dashboard", gin.H{
		"runs":        runs,
		"leaderboard": leaderboard,
	})
}

// addRun creates a run from the submitted form for the current user and
// redirects back to the dashboard.
func (a *RunController) addRun(c *gin.Context) {
	user := loginUser(c)
	basePath := c.GetString("base_path")

	var form AddRunForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, flashError, "Invalid form data")
		c.Redirect(http.StatusFound, basePath+"dashboard")
		return
	}

	date := time.Now().UTC()
	if form.Date != "" {
		parsed, err := time.Parse(dateFormat, form.Date)
		if err != nil {
			addFlash(c, flashError, "Date must be in YYYY-MM-DD format")
			c.Redirect(http.StatusFound, basePath+"dashboard")
			return
		}
		date = parsed
	}

	distance, err := strconv.ParseFloat(form.Distance, 64)
	if err != nil {
		addFlash(c, flashError, "Distance must be a number")
		c.Redirect(http.StatusFound, basePath+"dashboard")
		return
	}

	duration, err := common.ParseDuration(form.Duration)
	if err != nil {
		strict, settingErr := a.settingService.GetStrictDuration()
		if settingErr != nil {
			logger.Warning("unable to get strictDuration setting:", settingErr)
		}
		if strict {
			addFlash(c, flashError, "Duration must be in MM:SS format")
			c.Redirect(http.StatusFound, basePath+"dashboard")
			return
		}
		// Legacy behavior: a malformed duration is stored as zero.
		logger.Debugf("coercing malformed duration %q to 0", form.Duration)
		duration = 0
	}

	if _, err := a.runService.AddRun(user.Id, distance, duration, date); err != nil {
		logger.Warning("add run err:", err)
		addFlash(c, flashError, "Could not save the run")
		c.Redirect(http.StatusFound, basePath+"dashboard")
		return
	}

	addFlash(c, flashSuccess, "Run added!")
	c.Redirect(http.StatusFound, basePath+"dashboard")
}

// delRun deletes a run if it belongs to the current user. A foreign run
// is left intact and reported with a flash message, a missing one is a 404.
func (a *RunController) delRun(c *gin.Context) {
	user := loginUser(c)
	basePath := c.GetString("base_path")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	err = a.runService.DelRun(id, user.Id)
	switch {
	case err == nil:
		addFlash(c, flashSuccess, "Run deleted.")
		c.Redirect(http.StatusFound, basePath+"dashboard")
	case err == service.ErrNotRunOwner:
		logger.Warningf("%s tried to delete run %d owned by someone else", user.Username, id)
		addFlash(c, flashError, "You cannot delete this run.")
		c.Redirect(http.StatusFound, basePath+"dashboard")
	case database.IsNotFound(err):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		logger.Warning("delete run err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// runsData exports the current user's runs as a JSON array.
func (a *RunController) runsData(c *gin.Context) {
	user := loginUser(c)

	runs, err := a.runService.GetRunsByUser(user.Id)
	if err != nil {
		logger.Warning("load runs err:", err)
		c.JSON(http.StatusInternalServerError, entity.Msg{Msg: "could not load runs"})
		return
	}

	records := make([]entity.RunRecord, 0, len(runs))
	for _, run := range runs {
		records = append(records, entity.RunRecord{
			Id:       run.Id,
			Date:     run.Date.Format(dateFormat),
			Distance: run.Distance,
			Duration: run.Duration,
		})
	}
	c.JSON(http.StatusOK, records)
}

// runDetail renders a single run. The owner's username is resolved
// through an explicit join on the users table.
func (a *RunController) runDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	run, err := a.runService.GetRun(id)
	if database.IsNotFound(err) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Warning("load run err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	username, err := a.runService.GetRunOwner(run.Id)
	if err != nil {
		logger.Warning("resolve run owner err:", err)
	}

	html(c, "run_detail.html", "Run detail", gin.H{
		"run":      run,
		"username": username,
	})
}
