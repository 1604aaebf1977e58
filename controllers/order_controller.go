package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func (oc *OrderController) List(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	orders, err := oc.orderService.List(services.OrderListParam{
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "주문 목록", orders)
}

func (oc *OrderController) Get(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.orderService.Get(services.OrderGetParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "주문 상세", order)
}

// Create is guest-facing and unauthenticated; the guest id in the body is
// checked against the party instead.
func (oc *OrderController) Create(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	var body struct {
		GuestID uint `json:"guest_id" binding:"required"`
		Items   []struct {
			MenuID    uint    `json:"menu_id" binding:"required"`
			Quantity  *int    `json:"quantity"`
			Notes     *string `json:"notes"`
			OptionIDs []uint  `json:"option_ids"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	items := make([]services.OrderItemCreateParam, 0, len(body.Items))
	for _, item := range body.Items {
		// omitted quantity defaults to 1; an explicit value below 1 is malformed
		quantity := 1
		if item.Quantity != nil {
			if *item.Quantity < 1 {
				utils.RespondError(c, utils.BadRequest("수량은 1개 이상이어야 합니다"))
				return
			}
			quantity = *item.Quantity
		}
		items = append(items, services.OrderItemCreateParam{
			MenuID:    item.MenuID,
			Quantity:  quantity,
			Notes:     item.Notes,
			OptionIDs: item.OptionIDs,
		})
	}

	order, err := oc.orderService.Create(services.OrderCreateParam{
		PartyID: partyID,
		GuestID: body.GuestID,
		Items:   items,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "주문이 접수되었습니다", order)
}

func (oc *OrderController) Update(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	var body struct {
		Status *models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	if body.Status != nil && !body.Status.Valid() {
		utils.RespondError(c, utils.BadRequest("유효하지 않은 주문 상태입니다"))
		return
	}

	order, err := oc.orderService.Update(services.OrderUpdateParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
		Status:  body.Status,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "주문이 수정되었습니다", order)
}
