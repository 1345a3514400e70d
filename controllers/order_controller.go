package controllers

import (
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /api/orders?status=&customerId=&startDate=&endDate=&pageNumber=&pageSize=
func (h *OrderController) List(c *gin.Context) {
	var f entity.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	page, err := h.Svc.List(utils.RequestContext(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(page.TotalCount))
	resp.OK(c, page)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Get(utils.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /api/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body entity.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := h.Svc.UpdateStatus(utils.RequestContext(c), id, body.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /api/orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(utils.RequestContext(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/orders/stats
func (h *OrderController) Stats(c *gin.Context) {
	st, err := h.Svc.Stats(utils.RequestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, st)
}
