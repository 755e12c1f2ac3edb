package adminui

import (
	"github.com/gin-gonic/gin"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
)

const draftsTarget = "/drafts"

type draftsView struct {
	Routes []string
}

// Drafts lists the page schemas saved in the local store.
func (h *Handler) Drafts(c *gin.Context) {
	routes, err := h.schemas.Drafts(c.Request.Context())
	if err != nil {
		h.respond(c, "", err)
		return
	}
	h.html(c, "drafts", draftsView{Routes: routes})
}

// DiscardDraft deletes the local copy of a route and drops its open builder
// so the next visit reloads from the API or the preset.
func (h *Handler) DiscardDraft(c *gin.Context) {
	route := c.Param("route")
	if err := h.schemas.DiscardDraft(c.Request.Context(), route); err != nil {
		h.respond(c, "", err)
		return
	}
	h.workspace.Discard(route)
	h.logger.Debug("Builder session dropped", infralogger.String("route", route))
	h.respond(c, draftsTarget, nil)
}
