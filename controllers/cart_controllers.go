package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/store"
	"github.com/korbahq/korba-app/utils"
)

type CartController struct {
	DB    *gorm.DB
	Carts *store.CartManager
}

func NewCartController(db *gorm.DB, carts *store.CartManager) *CartController {
	return &CartController{DB: db, Carts: carts}
}

var errCartNotFound = errors.New("cart not found")

type cartView struct {
	CartID     string           `json:"cart_id"`
	Lines      []store.CartLine `json:"lines"`
	TotalItems int              `json:"total_items"`
	TotalPrice int              `json:"total_price"`
}

func viewOf(id string, cart *store.CartStore) cartView {
	lines, totalItems, totalPrice := cart.Snapshot()
	return cartView{
		CartID:     id,
		Lines:      lines,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}

// CreateCart -> hand out a fresh empty cart
func (cc *CartController) CreateCart(c *gin.Context) {
	id := cc.Carts.Create()
	utils.RespondJSON(c, http.StatusCreated, "Cart created", viewOf(id, cc.Carts.Get(id)))
}

// GetCart -> current lines and totals
func (cc *CartController) GetCart(c *gin.Context) {
	id := c.Param("cart_id")
	cart := cc.Carts.Get(id)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart contents", viewOf(id, cart))
}

// AddItem -> add one unit of a menu item; an existing line is incremented
func (cc *CartController) AddItem(c *gin.Context) {
	id := c.Param("cart_id")
	cart := cc.Carts.Get(id)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}

	var req struct {
		MenuID string `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := cc.DB.First(&item, "id = ?", req.MenuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cart.AddItem(item)
	utils.RespondJSON(c, http.StatusOK, "Item added", viewOf(id, cart))
}

// UpdateQuantity -> set a line's quantity; zero or less removes the line.
// An unknown item leaves the cart unchanged.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	id := c.Param("cart_id")
	cart := cc.Carts.Get(id)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart.UpdateQuantity(c.Param("item_id"), *req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", viewOf(id, cart))
}

// RemoveItem -> drop a line; no-op when absent
func (cc *CartController) RemoveItem(c *gin.Context) {
	id := c.Param("cart_id")
	cart := cc.Carts.Get(id)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}

	cart.RemoveItem(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", viewOf(id, cart))
}

// ClearCart -> empty the cart wholesale
func (cc *CartController) ClearCart(c *gin.Context) {
	id := c.Param("cart_id")
	cart := cc.Carts.Get(id)
	if cart == nil {
		utils.RespondError(c, http.StatusNotFound, errCartNotFound)
		return
	}

	cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", viewOf(id, cart))
}
