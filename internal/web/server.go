// Package web serves the HTML pages and the JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/chris/studydesk/internal/planner"
	"github.com/chris/studydesk/internal/study"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 30 * time.Second

type Options struct {
	Production  bool
	CORSOrigins []string
}

type Server struct {
	store  *planner.Store
	study  *study.Service
	log    *zap.SugaredLogger
	engine *gin.Engine
}

func NewServer(store *planner.Store, svc *study.Service, log *zap.SugaredLogger, opts Options) (*Server, error) {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	setupMiddleware(r, log, opts.CORSOrigins)

	s := &Server{store: store, study: svc, log: log, engine: r}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	s.engine.GET("/", s.dashboardPage)
	s.engine.POST("/tasks", s.addTaskPage)
	s.engine.GET("/tasks/:id/edit", s.editTaskPage)
	s.engine.POST("/tasks/:id", s.saveTaskPage)
	s.engine.GET("/study-plan", s.studyPlanPage)
	s.engine.POST("/study-plan", s.submitStudyPlanPage)
	s.engine.GET("/study-tips", s.studyTipsPage)
	s.engine.POST("/study-tips", s.submitStudyTipsPage)
	s.engine.GET("/resources", s.resourcesPage)
	s.engine.POST("/resources", s.submitResourcesPage)

	api := s.engine.Group("/api/v1")
	{
		api.GET("/subjects", s.listSubjects)
		api.GET("/tasks", s.listTasks)
		api.POST("/tasks", s.createTask)
		api.PUT("/tasks/:id", s.updateTask)
		api.GET("/dashboard", s.dashboard)

		api.POST("/study-plan", s.studyPlan)
		api.POST("/study-tips", s.studyTips)
		api.POST("/resources", s.resources)
	}
}

func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errc := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
