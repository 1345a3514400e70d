package controllers

import (
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type PDVController struct {
	Svc       *services.PDVService
	Catalog   *services.CatalogService
	Customers *services.CustomerService
}

func NewPDVController(s *services.PDVService, cat *services.CatalogService, cust *services.CustomerService) *PDVController {
	return &PDVController{Svc: s, Catalog: cat, Customers: cust}
}

func (h *PDVController) session(c *gin.Context) (*services.PDVSession, bool) {
	sess, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return sess, true
}

func (h *PDVController) changed(c *gin.Context, sess *services.PDVSession) {
	h.Svc.Changed(sess)
	resp.OK(c, sess.View())
}

// POST /api/pdv/sessions
func (h *PDVController) Open(c *gin.Context) {
	sess := h.Svc.Open()
	resp.Created(c, sess.View())
}

// GET /api/pdv/sessions
func (h *PDVController) List(c *gin.Context) {
	resp.OK(c, h.Svc.List())
}

// GET /api/pdv/sessions/:id
func (h *PDVController) Detail(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	resp.OK(c, sess.View())
}

// DELETE /api/pdv/sessions/:id
func (h *PDVController) Close(c *gin.Context) {
	if err := h.Svc.Close(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// PUT /api/pdv/sessions/:id/customer
func (h *PDVController) SelectCustomer(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var body struct {
		CustomerID *uint            `json:"customerId"`
		Customer   *entity.Customer `json:"customer"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	switch {
	case body.Customer != nil:
		sess.Config.SelectCustomer(body.Customer)
	case body.CustomerID != nil:
		cust, err := h.Customers.Get(utils.RequestContext(c), *body.CustomerID)
		if err != nil {
			fail(c, err)
			return
		}
		sess.Config.SelectCustomer(cust)
	default:
		sess.Config.SelectCustomer(nil)
	}
	h.changed(c, sess)
}

// PUT /api/pdv/sessions/:id/table
func (h *PDVController) SelectTable(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var body struct {
		Table *entity.Table `json:"table"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess.Config.SelectTable(body.Table)
	h.changed(c, sess)
}

// PUT /api/pdv/sessions/:id/order-type
func (h *PDVController) SelectOrderType(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var body struct {
		OrderType entity.OrderType `json:"orderType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !body.OrderType.Valid() {
		fail(c, services.ErrInvalidOrderType)
		return
	}
	sess.Config.SelectOrderType(body.OrderType)
	h.changed(c, sess)
}

// PUT /api/pdv/sessions/:id/payment-method
func (h *PDVController) SelectPaymentMethod(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var body struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess.Config.SelectPaymentMethod(body.PaymentMethod)
	h.changed(c, sess)
}

// GET /api/pdv/payment-methods
func (h *PDVController) PaymentMethods(c *gin.Context) {
	resp.OK(c, entity.PaymentMethods)
}

// GET /api/pdv/sessions/:id/change?received=
func (h *PDVController) Change(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	received, err := strconv.ParseFloat(c.Query("received"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid received")
		return
	}
	resp.OK(c, gin.H{"total": sess.Cart.Total(), "received": received, "change": sess.Cart.Change(received)})
}

// POST /api/pdv/sessions/:id/finalize
func (h *PDVController) Finalize(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	order, err := sess.Finalize(utils.RequestContext(c))
	if err != nil {
		h.Svc.Changed(sess)
		fail(c, err)
		return
	}
	h.Svc.Changed(sess)
	resp.Created(c, gin.H{"order": order, "session": sess.View()})
}

// DELETE /api/pdv/sessions/:id/error
func (h *PDVController) ClearError(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.ClearError()
	h.changed(c, sess)
}
