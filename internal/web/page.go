package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
	"github.com/chris/studydesk/internal/study"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"due":      planner.DueLabel,
		"dueHuman": dueHuman,
	}
}

func dueHuman(t *time.Time) string {
	if t == nil {
		return ""
	}
	return humanize.Time(*t)
}

// taskFormView backs the add and edit forms. ID is zero when adding.
type taskFormView struct {
	ID         int64
	Subjects   []planner.Subject
	Priorities []planner.Priority
	Form       planner.TaskForm
	Errors     map[string]string
}

type dashboardView struct {
	Cards    []planner.Card
	TaskForm taskFormView
}

// generateView backs the three helper pages. Result is nil until a
// generation succeeds.
type generateView struct {
	Form   any
	Result any
	Error  string
	Errors map[string]string
}

func (s *Server) taskForm(id int64, form planner.TaskForm, errs map[string]string) taskFormView {
	return taskFormView{
		ID:         id,
		Subjects:   s.store.Subjects(),
		Priorities: planner.Priorities,
		Form:       form,
		Errors:     errs,
	}
}

func (s *Server) renderDashboard(c *gin.Context, status int, form planner.TaskForm, errs map[string]string) {
	c.HTML(status, "dashboard.html", dashboardView{
		Cards:    s.store.Board().Dashboard(s.store.Subjects(), planner.DefaultCardLimit),
		TaskForm: s.taskForm(0, form, errs),
	})
}

func (s *Server) dashboardPage(c *gin.Context) {
	s.renderDashboard(c, http.StatusOK, planner.TaskForm{Priority: string(planner.PriorityMedium)}, nil)
}

func (s *Server) addTaskPage(c *gin.Context) {
	var form planner.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	if _, err := s.store.Add(form); err != nil {
		var formErr *planner.FormError
		if errors.As(err, &formErr) {
			s.renderDashboard(c, http.StatusBadRequest, form, formErr.Fields)
			return
		}
		s.log.Errorw("add task failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) editTaskPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id")
		return
	}
	task, ok := s.store.Board().Get(id)
	if !ok {
		c.String(http.StatusNotFound, "task not found")
		return
	}
	c.HTML(http.StatusOK, "edit.html", s.taskForm(id, planner.FormFromTask(task), nil))
}

func (s *Server) saveTaskPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id")
		return
	}
	var form planner.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	if _, err := s.store.Edit(id, form); err != nil {
		var formErr *planner.FormError
		switch {
		case errors.As(err, &formErr):
			c.HTML(http.StatusBadRequest, "edit.html", s.taskForm(id, form, formErr.Fields))
		case errors.Is(err, planner.ErrTaskNotFound):
			c.String(http.StatusNotFound, "task not found")
		default:
			s.log.Errorw("edit task failed", "id", id, "error", err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) studyPlanPage(c *gin.Context) {
	c.HTML(http.StatusOK, "plan.html", generateView{Form: studyPlanRequest{}})
}

func (s *Server) submitStudyPlanPage(c *gin.Context) {
	var req studyPlanRequest
	if !bindForm(c, &req) {
		return
	}
	in := study.PlanInputFromBoard(s.store.Board(), req.LearningPreferences)
	out, err := s.study.GenerateStudyPlan(c.Request.Context(), in)
	s.renderGenerated(c, "plan.html", "study plan", req, out, err)
}

func (s *Server) studyTipsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "tips.html", generateView{Form: studyTipsRequest{}})
}

func (s *Server) submitStudyTipsPage(c *gin.Context) {
	var req studyTipsRequest
	if !bindForm(c, &req) {
		return
	}
	if err := prompt.Validate(req); err != nil {
		s.renderGenerated(c, "tips.html", "study tips", req, nil, err)
		return
	}
	in := study.TipsInputFromBoard(s.store.Board(), s.store.Subjects(), req.LearningHabits, req.Schedule)
	out, err := s.study.ProvideStudyTips(c.Request.Context(), in)
	s.renderGenerated(c, "tips.html", "study tips", req, out, err)
}

func (s *Server) resourcesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "resources.html", generateView{Form: resourcesRequest{}})
}

func (s *Server) submitResourcesPage(c *gin.Context) {
	var req resourcesRequest
	if !bindForm(c, &req) {
		return
	}
	if err := prompt.Validate(req); err != nil {
		s.renderGenerated(c, "resources.html", "resources", req, nil, err)
		return
	}
	out, err := s.study.SuggestLearningResources(c.Request.Context(), study.ResourcesInput(req))
	s.renderGenerated(c, "resources.html", "resources", req, out, err)
}

// renderGenerated shows the result of a helper, or the submitted form with
// the failure message when it did not succeed.
func (s *Server) renderGenerated(c *gin.Context, name, thing string, form, result any, err error) {
	view := generateView{Form: form}
	status := http.StatusOK
	if err != nil {
		status, view.Error, view.Errors = s.generationFailure(c, err, thing)
	} else {
		view.Result = result
	}
	c.HTML(status, name, view)
}

func bindForm(c *gin.Context, v any) bool {
	if err := c.ShouldBind(v); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return false
	}
	return true
}
