package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/site"
)

type pageHandlers struct {
	site     *site.Site
	sender   contact.Sender
	reporter contact.FailureReporter
	logger   *zap.Logger
	cfg      config.AppConfig
	after    contact.AfterFunc
}

// contactRequest mirrors the form inputs; the binding rules match the
// required/type="email" attributes the browser enforces.
type contactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

func fillFlow(flow *contact.Flow, req contactRequest) error {
	fields := []struct {
		field contact.Field
		value string
	}{
		{contact.FieldName, req.Name},
		{contact.FieldEmail, req.Email},
		{contact.FieldMessage, req.Message},
	}
	for _, f := range fields {
		if err := flow.UpdateField(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (h *pageHandlers) newForm() site.FormView {
	return site.NewFormView(site.DefaultContactEndpoint, h.cfg.BannerDuration)
}

func (h *pageHandlers) index(c *gin.Context) {
	page, err := h.site.Page(h.newForm())
	if err != nil {
		h.logger.Error("render page", append(logging.Fields(c.Request.Context()), zap.Error(err))...)
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.HTML(http.StatusOK, "index.html", page)
}

// section serves one section for HTMX partial loads.
func (h *pageHandlers) section(c *gin.Context) {
	id := c.Param("id")
	if !site.IsSection(id) {
		c.String(http.StatusNotFound, "unknown section")
		return
	}

	page, err := h.site.Page(h.newForm())
	if err != nil {
		h.renderFailed(c, id, err)
		return
	}
	frag, err := h.site.Section(id, page)
	if err != nil {
		h.renderFailed(c, id, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(frag))
}

func (h *pageHandlers) renderFailed(c *gin.Context, section string, err error) {
	h.logger.Error("render section", append(logging.Fields(c.Request.Context()), zap.String("section", section), zap.Error(err))...)
	c.String(http.StatusInternalServerError, "section unavailable")
}

func (h *pageHandlers) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", h.newForm())
}

func (h *pageHandlers) hideBanner(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-banner-hidden", nil)
}

// submitContact mounts a contact flow for this request, fills it from the
// posted fields and submits once. The visitor sees the banner on success and
// the unchanged form otherwise; delivery failures only reach the logs and the
// diagnostics console.
func (h *pageHandlers) submitContact(c *gin.Context) {
	form := h.newForm()
	posted := contact.Submission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		form.Submission = posted
		c.HTML(http.StatusUnprocessableEntity, "contact-form", form)
		return
	}

	flow := contact.NewFlow(h.sender, h.logger, contact.Options{
		BannerDuration:   h.cfg.BannerDuration,
		RestartHideTimer: h.cfg.RestartHideTimer,
		AfterFunc:        h.after,
		Reporter:         h.reporter,
	})
	defer flow.Close()

	if err := fillFlow(flow, req); err != nil {
		h.logger.Error("fill contact flow", append(logging.Fields(c.Request.Context()), zap.Error(err))...)
		c.String(http.StatusInternalServerError, "contact form unavailable")
		return
	}

	err := flow.Submit(c.Request.Context())
	form.Submission = flow.Snapshot()
	form.BannerVisible = flow.BannerVisible()

	status := http.StatusOK
	if errors.Is(err, contact.ErrInvalidSubmission) {
		status = http.StatusUnprocessableEntity
	}
	c.HTML(status, "contact-form", form)
}
