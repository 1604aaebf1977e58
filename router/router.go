package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/controllers"
	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(services.NewAuthService(db))
	partyCtrl := controllers.NewPartyController(services.NewPartyService(db))
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(db))
	menuCtrl := controllers.NewMenuController(services.NewMenuService(db))
	groupCtrl := controllers.NewOptionGroupController(services.NewOptionGroupService(db))
	optionCtrl := controllers.NewOptionController(services.NewOptionService(db))
	codeCtrl := controllers.NewInviteCodeController(services.NewInviteCodeService(db))
	guestCtrl := controllers.NewPartyGuestController(services.NewPartyGuestService(db))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.POST("/auth/signup", authCtrl.Signup)
	api.POST("/auth/login", authCtrl.Login)

	// Guest entry points: invite code join and ordering, no account needed.
	api.POST("/join", guestCtrl.Join)
	api.POST("/parties/:party_id/orders", orderCtrl.Create)

	// ----------------------------------------------------------------
	//                      HOST ROUTES
	// ----------------------------------------------------------------
	host := api.Group("/")
	host.Use(middlewares.AuthMiddleware())

	// PARTIES
	host.GET("/parties", partyCtrl.List)
	host.POST("/parties", partyCtrl.Create)
	host.GET("/parties/:party_id", partyCtrl.Get)
	host.PATCH("/parties/:party_id", partyCtrl.Update)
	host.DELETE("/parties/:party_id", partyCtrl.Delete)

	// CATEGORIES
	host.GET("/parties/:party_id/categories", categoryCtrl.List)
	host.POST("/parties/:party_id/categories", categoryCtrl.Create)
	host.GET("/parties/:party_id/categories/:category_id", categoryCtrl.Get)
	host.PATCH("/parties/:party_id/categories/:category_id", categoryCtrl.Update)
	host.DELETE("/parties/:party_id/categories/:category_id", categoryCtrl.Delete)
	host.PATCH("/parties/:party_id/categories", categoryCtrl.Reorder)

	// MENUS
	host.GET("/categories/:category_id/menus", menuCtrl.List)
	host.POST("/categories/:category_id/menus", menuCtrl.Create)
	host.GET("/categories/:category_id/menus/:menu_id", menuCtrl.Get)
	host.PATCH("/categories/:category_id/menus/:menu_id", menuCtrl.Update)
	host.DELETE("/categories/:category_id/menus/:menu_id", menuCtrl.Delete)
	host.PATCH("/categories/:category_id/menus", menuCtrl.Reorder)

	// OPTION GROUPS
	host.GET("/menus/:menu_id/option-groups", groupCtrl.List)
	host.POST("/menus/:menu_id/option-groups", groupCtrl.Create)
	host.GET("/menus/:menu_id/option-groups/:group_id", groupCtrl.Get)
	host.PATCH("/menus/:menu_id/option-groups/:group_id", groupCtrl.Update)
	host.DELETE("/menus/:menu_id/option-groups/:group_id", groupCtrl.Delete)

	// OPTIONS
	host.GET("/option-groups/:group_id/options", optionCtrl.List)
	host.POST("/option-groups/:group_id/options", optionCtrl.Create)
	host.GET("/option-groups/:group_id/options/:option_id", optionCtrl.Get)
	host.PATCH("/option-groups/:group_id/options/:option_id", optionCtrl.Update)
	host.DELETE("/option-groups/:group_id/options/:option_id", optionCtrl.Delete)
	host.PATCH("/option-groups/:group_id/options", optionCtrl.Reorder)

	// INVITE CODES
	host.GET("/parties/:party_id/invite-codes", codeCtrl.List)
	host.POST("/parties/:party_id/invite-codes", codeCtrl.Create)
	host.GET("/parties/:party_id/invite-codes/:code_id", codeCtrl.Get)
	host.PATCH("/parties/:party_id/invite-codes/:code_id", codeCtrl.Update)
	host.DELETE("/parties/:party_id/invite-codes/:code_id", codeCtrl.Delete)

	// GUESTS
	host.GET("/parties/:party_id/guests", guestCtrl.List)
	host.GET("/parties/:party_id/guests/:guest_id", guestCtrl.Get)
	host.PATCH("/parties/:party_id/guests/:guest_id", guestCtrl.Update)
	host.DELETE("/parties/:party_id/guests/:guest_id", guestCtrl.Delete)

	// ORDERS
	host.GET("/parties/:party_id/orders", orderCtrl.List)
	host.GET("/parties/:party_id/orders/:order_id", orderCtrl.Get)
	host.PATCH("/parties/:party_id/orders/:order_id", orderCtrl.Update)

	return r
}
