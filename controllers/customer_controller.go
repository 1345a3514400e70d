package controllers

import (
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct{ Svc *services.CustomerService }

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: s}
}

// GET /api/customers?page=&pageSize=&search=
func (h *CustomerController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	out, err := h.Svc.List(utils.RequestContext(c), page, size, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/customers/:id
func (h *CustomerController) Detail(c *gin.Context) {
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

// POST /api/customers
func (h *CustomerController) Create(c *gin.Context) {
	var f entity.CustomerForm
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(utils.RequestContext(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/customers/:id
func (h *CustomerController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var f entity.CustomerForm
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Update(utils.RequestContext(c), id, f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/customers/:id
func (h *CustomerController) Deactivate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Deactivate(utils.RequestContext(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /api/customers/:id/activate
func (h *CustomerController) Activate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.Activate(utils.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
