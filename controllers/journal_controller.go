package controllers

import (
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct{ Svc *services.JournalService }

func NewJournalController(s *services.JournalService) *JournalController {
	return &JournalController{Svc: s}
}

// GET /api/journal?sessionId=&limit=
func (h *JournalController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.Recent(c.Query("sessionId"), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/journal/totals
func (h *JournalController) Totals(c *gin.Context) {
	out, err := h.Svc.Totals()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
