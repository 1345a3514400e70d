package controllers

import (
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

// Cart routes live under a PDV session and share its controller.

// POST /api/pdv/sessions/:id/items
func (h *PDVController) AddItem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Catalog.GetProduct(utils.RequestContext(c), body.ProductID)
	if err != nil {
		fail(c, err)
		return
	}
	sess.Cart.AddItem(*p)
	h.changed(c, sess)
}

// PATCH /api/pdv/sessions/:id/items/:productId
func (h *PDVController) UpdateQty(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	pid, ok := idParam(c, "productId")
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess.Cart.UpdateQuantity(pid, *body.Quantity)
	h.changed(c, sess)
}

// POST /api/pdv/sessions/:id/items/:productId/increment
func (h *PDVController) Increment(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	pid, ok := idParam(c, "productId")
	if !ok {
		return
	}
	sess.Cart.Increment(pid)
	h.changed(c, sess)
}

// POST /api/pdv/sessions/:id/items/:productId/decrement
func (h *PDVController) Decrement(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	pid, ok := idParam(c, "productId")
	if !ok {
		return
	}
	sess.Cart.Decrement(pid)
	h.changed(c, sess)
}

// DELETE /api/pdv/sessions/:id/items/:productId
func (h *PDVController) RemoveItem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	pid, ok := idParam(c, "productId")
	if !ok {
		return
	}
	sess.Cart.RemoveItem(pid)
	h.changed(c, sess)
}

// DELETE /api/pdv/sessions/:id/items
func (h *PDVController) Clear(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Cart.Clear()
	h.changed(c, sess)
}
