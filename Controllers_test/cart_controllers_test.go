package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/korbahq/korba-app/controllers"
	"github.com/korbahq/korba-app/store"
	"github.com/korbahq/korba-app/utils"
)

func setupCartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	cartCtrl := controllers.NewCartController(db, store.NewCartManager())
	router.POST("/carts", cartCtrl.CreateCart)
	router.GET("/carts/:cart_id", cartCtrl.GetCart)
	router.POST("/carts/:cart_id/items", cartCtrl.AddItem)
	router.PATCH("/carts/:cart_id/items/:item_id", cartCtrl.UpdateQuantity)
	router.DELETE("/carts/:cart_id/items/:item_id", cartCtrl.RemoveItem)
	router.DELETE("/carts/:cart_id", cartCtrl.ClearCart)
	return router
}

func createCart(t *testing.T, router *gin.Engine) string {
	t.Helper()
	code, resp := doJSON(t, router, "POST", "/carts", nil, "")
	assert.Equal(t, http.StatusCreated, code)
	return dataOf(t, resp)["cart_id"].(string)
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	utils.InitLogger()
	router := setupCartRouter(setupCatalogDB(t))
	cartID := createCart(t, router)

	// Add the same item twice: one line, quantity 2.
	code, _ := doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "m6"}, "")
	assert.Equal(t, http.StatusOK, code)
	code, resp := doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "m6"}, "")
	assert.Equal(t, http.StatusOK, code)

	data := dataOf(t, resp)
	assert.Equal(t, float64(2), data["total_items"])
	assert.Equal(t, float64(1000), data["total_price"])
	assert.Len(t, data["lines"].([]interface{}), 1)

	// Drop the quantity back to 1.
	code, resp = doJSON(t, router, "PATCH", "/carts/"+cartID+"/items/m6", gin.H{"quantity": 1}, "")
	assert.Equal(t, http.StatusOK, code)
	data = dataOf(t, resp)
	assert.Equal(t, float64(1), data["total_items"])
	assert.Equal(t, float64(500), data["total_price"])

	// Remove the line entirely.
	code, resp = doJSON(t, router, "DELETE", "/carts/"+cartID+"/items/m6", nil, "")
	assert.Equal(t, http.StatusOK, code)
	data = dataOf(t, resp)
	assert.Equal(t, float64(0), data["total_items"])
	assert.Empty(t, data["lines"])
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	utils.InitLogger()
	router := setupCartRouter(setupCatalogDB(t))
	cartID := createCart(t, router)

	doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "s1"}, "")
	code, resp := doJSON(t, router, "PATCH", "/carts/"+cartID+"/items/s1", gin.H{"quantity": 0}, "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), dataOf(t, resp)["total_items"])
}

func TestCartClear(t *testing.T) {
	utils.InitLogger()
	router := setupCartRouter(setupCatalogDB(t))
	cartID := createCart(t, router)

	doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "d2"}, "")
	doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "dr3"}, "")

	code, resp := doJSON(t, router, "DELETE", "/carts/"+cartID, nil, "")
	assert.Equal(t, http.StatusOK, code)
	data := dataOf(t, resp)
	assert.Equal(t, float64(0), data["total_items"])
	assert.Equal(t, float64(0), data["total_price"])
}

func TestCartUnknownIDsAndItems(t *testing.T) {
	utils.InitLogger()
	router := setupCartRouter(setupCatalogDB(t))

	// Unknown cart.
	code, _ := doJSON(t, router, "GET", "/carts/not-a-cart", nil, "")
	assert.Equal(t, http.StatusNotFound, code)

	// Unknown menu item on a real cart.
	cartID := createCart(t, router)
	code, _ = doJSON(t, router, "POST", "/carts/"+cartID+"/items", gin.H{"menu_id": "zz99"}, "")
	assert.Equal(t, http.StatusNotFound, code)

	// Quantity update for an item the cart never held: silent no-op.
	code, resp := doJSON(t, router, "PATCH", "/carts/"+cartID+"/items/m1", gin.H{"quantity": 3}, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), dataOf(t, resp)["total_items"])
}
