package controllers

import (
	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct{ Svc *services.DeliveryService }

func NewDeliveryController(s *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /api/deliveries?status=&date=&type=&deliveryPerson=
func (h *DeliveryController) List(c *gin.Context) {
	var f entity.DeliveryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.List(utils.RequestContext(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/deliveries/active
func (h *DeliveryController) Active(c *gin.Context) {
	out, err := h.Svc.Active(utils.RequestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/deliveries/stats
func (h *DeliveryController) Stats(c *gin.Context) {
	out, err := h.Svc.Stats(utils.RequestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/deliveries/:id
func (h *DeliveryController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.Get(utils.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /api/deliveries/:id/status
func (h *DeliveryController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body entity.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateStatus(utils.RequestContext(c), id, &body)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /api/deliveries/:id/assign
func (h *DeliveryController) Assign(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body entity.AssignDeliveryPersonRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Assign(utils.RequestContext(c), id, body.DeliveryPerson)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /api/deliveries/:id/estimated-time
func (h *DeliveryController) EstimatedTime(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body entity.EstimatedTimeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.EstimatedDeliveryTime.IsZero() {
		resp.BadRequest(c, "estimatedDeliveryTime is required")
		return
	}
	out, err := h.Svc.SetEstimatedTime(utils.RequestContext(c), id, &body)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
