// Package web serves the task list page. Every button on the page posts a
// click on the matching control of the controller's document and redirects
// back to the page.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-cards/internal/controller"
	"github.com/adanyl0v/go-task-cards/internal/dom"
)

//go:embed templates/index.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// TaskList is the part of the controller the page drives.
type TaskList interface {
	SetInputs(ctx context.Context, name, description string) error
	Create(ctx context.Context) error
	Click(ctx context.Context, ref string, control dom.Control) error
	FillDialog(ctx context.Context, ref, name, description string) error
	Snapshot(ctx context.Context) (dom.Snapshot, error)
}

type Handler struct {
	logger zerolog.Logger
	tasks  TaskList
}

func New(logger zerolog.Logger, tasks TaskList) *Handler {
	return &Handler{
		logger: logger,
		tasks:  tasks,
	}
}

func RegisterRoutes(router *gin.Engine, h *Handler) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.SetHTMLTemplate(indexTmpl)
	router.StaticFS("/assets", http.FS(assets))

	router.GET("/", h.HandleIndex)
	router.POST("/tasks", h.HandleCreateTask)
	router.POST("/cards/:ref/edit", h.HandleClick("ref", dom.ControlEdit))
	router.POST("/cards/:ref/delete", h.HandleClick("ref", dom.ControlDelete))
	router.POST("/dialogs/:ref/cancel", h.HandleClick("ref", dom.ControlCancel))
	router.POST("/dialogs/:ref/confirm", h.HandleConfirmEdit)
}

func (h *Handler) HandleIndex(c *gin.Context) {
	snapshot, err := h.tasks.Snapshot(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", snapshot)
}

func (h *Handler) HandleCreateTask(c *gin.Context) {
	err := h.tasks.SetInputs(c, c.PostForm("name"), c.PostForm("description"))
	if err != nil {
		h.fail(c, err)
		return
	}

	err = h.tasks.Create(c)
	if err != nil && !errors.Is(err, controller.ErrEmptyField) {
		h.fail(c, err)
		return
	}
	if err != nil {
		h.logger.Debug().
			Err(err).
			Msg("task rejected")
	}
	h.redirect(c)
}

func (h *Handler) HandleClick(param string, control dom.Control) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h.tasks.Click(c, c.Param(param), control)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.redirect(c)
	}
}

func (h *Handler) HandleConfirmEdit(c *gin.Context) {
	ref := c.Param("ref")
	err := h.tasks.FillDialog(c, ref, c.PostForm("name"), c.PostForm("description"))
	if err != nil {
		h.fail(c, err)
		return
	}

	err = h.tasks.Click(c, ref, dom.ControlConfirm)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.redirect(c)
}

func (h *Handler) redirect(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, dom.ErrElementNotFound) {
		h.logger.Warn().
			Str("path", c.Request.URL.Path).
			Msg("element not found")
		c.String(http.StatusNotFound, "%s", http.StatusText(http.StatusNotFound))
		return
	}

	h.logger.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("failed to handle page action")
	c.String(http.StatusInternalServerError, "%s", http.StatusText(http.StatusInternalServerError))
}
