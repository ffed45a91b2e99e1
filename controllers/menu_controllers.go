package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> list catalog items, optionally filtered by ?search= and ?category=
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	query := mc.DB.Model(&models.MenuItem{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuByID -> one catalog item
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id := c.Param("menu_id")

	var item models.MenuItem
	if err := mc.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item", item)
}

// GetCategories -> the fixed menu sections in display order
func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu categories", models.Categories)
}
