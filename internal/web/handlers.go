package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/prompt"
	"github.com/chris/studydesk/internal/study"
	"github.com/gin-gonic/gin"
)

type studyPlanRequest struct {
	LearningPreferences string `json:"learningPreferences" form:"learningPreferences"`
}

type studyTipsRequest struct {
	LearningHabits string `json:"learningHabits" form:"learningHabits" validate:"required,min=10"`
	Schedule       string `json:"schedule" form:"schedule" validate:"required,min=10"`
}

type resourcesRequest struct {
	Subject string `json:"subject" form:"subject" validate:"required,min=2"`
	Task    string `json:"task" form:"task" validate:"required,min=2"`
}

func (s *Server) listSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Subjects())
}

func (s *Server) listTasks(c *gin.Context) {
	board := s.store.Board()
	tasks := board.Tasks()
	if subject := c.Query("subject"); subject != "" {
		tasks = board.BySubject(subject)
	}
	if tasks == nil {
		tasks = []planner.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Board().Dashboard(s.store.Subjects(), planner.DefaultCardLimit))
}

func (s *Server) createTask(c *gin.Context) {
	var form planner.TaskForm
	if !bindJSON(c, &form) {
		return
	}
	task, err := s.store.Add(form)
	if err != nil {
		s.taskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}
	var form planner.TaskForm
	if !bindJSON(c, &form) {
		return
	}
	task, err := s.store.Edit(id, form)
	if err != nil {
		s.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) taskError(c *gin.Context, err error) {
	var formErr *planner.FormError
	switch {
	case errors.As(err, &formErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": formErr.Fields})
	case errors.Is(err, planner.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		s.log.Errorw("task update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) studyPlan(c *gin.Context) {
	var req studyPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	in := study.PlanInputFromBoard(s.store.Board(), req.LearningPreferences)
	out, err := s.study.GenerateStudyPlan(c.Request.Context(), in)
	if err != nil {
		s.generationError(c, err, "study plan")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) studyTips(c *gin.Context) {
	var req studyTipsRequest
	if !bindJSON(c, &req) || !validRequest(c, req) {
		return
	}
	in := study.TipsInputFromBoard(s.store.Board(), s.store.Subjects(), req.LearningHabits, req.Schedule)
	out, err := s.study.ProvideStudyTips(c.Request.Context(), in)
	if err != nil {
		s.generationError(c, err, "study tips")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) resources(c *gin.Context) {
	var req resourcesRequest
	if !bindJSON(c, &req) || !validRequest(c, req) {
		return
	}
	out, err := s.study.SuggestLearningResources(c.Request.Context(), study.ResourcesInput(req))
	if err != nil {
		s.generationError(c, err, "resources")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) generationError(c *gin.Context, err error, thing string) {
	status, msg, fields := s.generationFailure(c, err, thing)
	body := gin.H{"error": msg}
	if fields != nil {
		body["fields"] = fields
	}
	c.JSON(status, body)
}

// generationFailure maps a helper error to a status and the message shown
// to the user. Upstream details only go to the log.
func (s *Server) generationFailure(c *gin.Context, err error, thing string) (int, string, map[string]string) {
	var verr *prompt.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, "validation failed", verr.Fields
	}
	s.log.Warnw("generate request failed", "what", thing, "error", err, "requestID", c.GetString(requestIDKey))
	return http.StatusBadGateway, "Failed to generate " + thing + ".", nil
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func validRequest(c *gin.Context, v any) bool {
	err := prompt.Validate(v)
	if err == nil {
		return true
	}
	var verr *prompt.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
	return false
}
