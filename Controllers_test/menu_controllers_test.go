package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/korbahq/korba-app/controllers"
	"github.com/korbahq/korba-app/database"
	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/utils"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedMenus(db); err != nil {
		t.Fatalf("failed to seed menus: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/categories", menuCtrl.GetCategories)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, url string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest("GET", url, nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestGetAllMenusReturnsFullCatalog(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(setupCatalogDB(t))

	code, resp := getJSON(t, router, "/menus")
	assert.Equal(t, http.StatusOK, code)

	items, ok := resp["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, len(models.MenuData))
}

func TestGetAllMenusSearchFilter(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(setupCatalogDB(t))

	code, resp := getJSON(t, router, "/menus?search=Karahi")
	assert.Equal(t, http.StatusOK, code)

	items := resp["data"].([]interface{})
	assert.NotEmpty(t, items)
	for _, raw := range items {
		item := raw.(map[string]interface{})
		name := item["name"].(string)
		desc := item["description"].(string)
		assert.True(t,
			containsFold(name, "Karahi") || containsFold(desc, "Karahi"),
			"item %q should match the search", name)
	}
}

func TestGetAllMenusCategoryFilter(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(setupCatalogDB(t))

	code, resp := getJSON(t, router, "/menus?category=Drinks")
	assert.Equal(t, http.StatusOK, code)

	items := resp["data"].([]interface{})
	assert.Len(t, items, 3)
	for _, raw := range items {
		assert.Equal(t, "Drinks", raw.(map[string]interface{})["category"])
	}
}

func TestGetMenuByID(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(setupCatalogDB(t))

	code, resp := getJSON(t, router, "/menus/m6")
	assert.Equal(t, http.StatusOK, code)

	item := resp["data"].(map[string]interface{})
	assert.Equal(t, "Kachay Beef Pulao", item["name"])
	assert.Equal(t, float64(500), item["price"])

	code, _ = getJSON(t, router, "/menus/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetCategories(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(setupCatalogDB(t))

	code, resp := getJSON(t, router, "/menus/categories")
	assert.Equal(t, http.StatusOK, code)

	categories := resp["data"].([]interface{})
	assert.Len(t, categories, 8)
	assert.Equal(t, "Beef Specials", categories[0])
}
