package controllers

import (
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct{ Svc *services.TableService }

func NewTableController(s *services.TableService) *TableController { return &TableController{Svc: s} }

func tableNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 0 {
		resp.BadRequest(c, "invalid table number")
		return 0, false
	}
	return n, true
}

// GET /api/tables/:number/orders?refresh=true
func (h *TableController) Orders(c *gin.Context) {
	n, ok := tableNumber(c)
	if !ok {
		return
	}
	if c.Query("refresh") == "true" {
		if _, err := h.Svc.LoadOrders(utils.RequestContext(c), n); err != nil {
			// stale list still goes back, with the error
			st := h.Svc.State(n)
			c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error(), "data": st})
			return
		}
	}
	resp.OK(c, h.Svc.State(n))
}

// POST /api/tables/:number/orders
func (h *TableController) CreateOrder(c *gin.Context) {
	n, ok := tableNumber(c)
	if !ok {
		return
	}
	var body struct {
		OrderType string `json:"orderType"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	order, err := h.Svc.CreateOrder(utils.RequestContext(c), n, body.OrderType)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /api/table-orders/:id/items
func (h *TableController) AddItems(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Items []entity.CreateOrderItem `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.AddItems(utils.RequestContext(c), id, body.Items)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/table-orders/:id/payment
func (h *TableController) ProcessPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		PaymentMethod string  `json:"paymentMethod" binding:"required"`
		Amount        float64 `json:"amount" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.ProcessPayment(utils.RequestContext(c), id, body.PaymentMethod, body.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /api/tables/error
func (h *TableController) ClearError(c *gin.Context) {
	h.Svc.ClearError()
	resp.NoContent(c)
}
