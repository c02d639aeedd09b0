package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
	"silzey-pos/internal/session"
)

type handlers struct {
	reg    Register
	logger zerolog.Logger
}

type categoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type tagRequest struct {
	Tag string `json:"tag"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type sortRequest struct {
	Sort string `json:"sort" binding:"required"`
}

type productRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type adjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *handlers) getSession(c *gin.Context) {
	v, err := h.reg.View(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) getCatalog(c *gin.Context) {
	page, err := h.reg.Catalog(c.Request.Context())
	if err != nil {
		h.fail(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, toCatalogJSON(page))
}

func (h *handlers) getCatalogMeta(c *gin.Context) {
	c.JSON(http.StatusOK, catalogMeta())
}

func (h *handlers) setCategory(c *gin.Context) {
	var req categoryRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.SetCategory(c.Request.Context(), req.Category)
	h.respond(c, v, err)
}

func (h *handlers) setTag(c *gin.Context) {
	var req tagRequest
	if !bind(c, &req) {
		return
	}
	if req.Tag != "" && !domain.IsTag(req.Tag) {
		c.JSON(http.StatusBadRequest, errorJSON{Error: "unknown tag"})
		return
	}
	v, err := h.reg.SetTagFilter(c.Request.Context(), req.Tag)
	h.respond(c, v, err)
}

func (h *handlers) setSearch(c *gin.Context) {
	var req searchRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.SetSearchTerm(c.Request.Context(), req.Term)
	h.respond(c, v, err)
}

func (h *handlers) setSort(c *gin.Context) {
	var req sortRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.SetSortOption(c.Request.Context(), catalog.ParseSort(req.Sort))
	h.respond(c, v, err)
}

func (h *handlers) loadMore(c *gin.Context) {
	v, err := h.reg.LoadMore(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) selectProduct(c *gin.Context) {
	var req productRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.SelectProduct(c.Request.Context(), req.ProductID)
	h.respond(c, v, err)
}

func (h *handlers) clearSelection(c *gin.Context) {
	v, err := h.reg.ClearSelection(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) getCart(c *gin.Context) {
	v, err := h.reg.View(c.Request.Context())
	if err != nil {
		h.fail(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, toCartJSON(v.Cart))
}

func (h *handlers) addToCart(c *gin.Context) {
	var req productRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.AddToCart(c.Request.Context(), req.ProductID)
	h.respond(c, v, err)
}

func (h *handlers) removeFromCart(c *gin.Context) {
	v, err := h.reg.RemoveFromCart(c.Request.Context(), c.Param("id"))
	h.respond(c, v, err)
}

func (h *handlers) adjustQuantity(c *gin.Context) {
	var req adjustRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	h.respond(c, v, err)
}

func (h *handlers) openCart(c *gin.Context) {
	v, err := h.reg.OpenCart(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) closeCart(c *gin.Context) {
	v, err := h.reg.CloseCart(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) proceedToCheckout(c *gin.Context) {
	v, err := h.reg.ProceedToCheckout(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) updateDraft(c *gin.Context) {
	var req draftJSON
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.UpdateDraft(c.Request.Context(), req.toDomain())
	h.respond(c, v, err)
}

func (h *handlers) cancelCheckout(c *gin.Context) {
	v, err := h.reg.CancelCheckout(c.Request.Context())
	h.respond(c, v, err)
}

func (h *handlers) finalizeSale(c *gin.Context) {
	var req draftJSON
	if !bind(c, &req) {
		return
	}
	v, err := h.reg.FinalizeSale(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, &v, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionJSON(v))
}

func (h *handlers) respond(c *gin.Context, v session.View, err error) {
	if err != nil {
		h.fail(c, &v, err)
		return
	}
	c.JSON(http.StatusOK, toSessionJSON(v))
}

// fail writes err with the session state it left behind. Rejected actions
// still carry the message the clerk should see.
func (h *handlers) fail(c *gin.Context, v *session.View, err error) {
	status := statusFor(err)
	body := errorJSON{Error: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	if v != nil && status != http.StatusServiceUnavailable {
		s := toSessionJSON(*v)
		body.Message = v.Message
		body.Session = &s
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, body)
}

func statusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrNotBrowsing),
		errors.Is(err, domain.ErrCheckoutNotOpen):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorJSON{Error: "invalid request body"})
		return false
	}
	return true
}
