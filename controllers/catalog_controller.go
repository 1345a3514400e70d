package controllers

import (
	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/pkg/resp"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /api/products?includeInactive=true
func (h *CatalogController) Products(c *gin.Context) {
	out, err := h.Svc.ListProducts(utils.RequestContext(c), c.Query("includeInactive") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/products/:id
func (h *CatalogController) Product(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.GetProduct(utils.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/products
func (h *CatalogController) CreateProduct(c *gin.Context) {
	var in entity.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateProduct(utils.RequestContext(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/products/:id
func (h *CatalogController) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in entity.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateProduct(utils.RequestContext(c), id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /api/products/:id/deactivate
func (h *CatalogController) DeactivateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var body entity.DeactivateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	if err := h.Svc.DeactivateProduct(utils.RequestContext(c), id, body.Reason); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// PATCH /api/products/:id/activate
func (h *CatalogController) ActivateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.ActivateProduct(utils.RequestContext(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/categories
func (h *CatalogController) Categories(c *gin.Context) {
	out, err := h.Svc.ListCategories(utils.RequestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/categories/:id
func (h *CatalogController) Category(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Svc.GetCategory(utils.RequestContext(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	var in entity.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateCategory(utils.RequestContext(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/categories/:id
func (h *CatalogController) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in entity.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateCategory(utils.RequestContext(c), id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/categories/:id
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(utils.RequestContext(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
