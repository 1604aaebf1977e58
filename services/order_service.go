package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type OrderListParam struct {
	PartyID uint
	HostID  uint
}

type OrderGetParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type OrderItemCreateParam struct {
	MenuID    uint
	Quantity  int
	Notes     *string
	OptionIDs []uint
}

type OrderCreateParam struct {
	PartyID uint
	GuestID uint
	Items   []OrderItemCreateParam
}

type OrderUpdateParam struct {
	ID      uint
	PartyID uint
	HostID  uint
	Status  *models.OrderStatus
}

type OrderItemOptionResult struct {
	ID       uint `json:"id"`
	OptionID uint `json:"option_id"`
}

type OrderItemResult struct {
	ID       uint                    `json:"id"`
	MenuID   uint                    `json:"menu_id"`
	Quantity int                     `json:"quantity"`
	Notes    *string                 `json:"notes,omitempty"`
	Options  []OrderItemOptionResult `json:"options"`
}

type OrderResult struct {
	ID        uint               `json:"id"`
	PartyID   uint               `json:"party_id"`
	GuestID   uint               `json:"guest_id"`
	Status    models.OrderStatus `json:"status"`
	Items     []OrderItemResult  `json:"items"`
	OrderedAt time.Time          `json:"ordered_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type OrderService struct {
	db         *gorm.DB
	orderRepo  *repository.OrderRepository
	itemRepo   *repository.OrderItemRepository
	optionRepo *repository.OrderItemOptionRepository
	partyRepo  *repository.PartyRepository
	guestRepo  *repository.PartyGuestRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:         db,
		orderRepo:  repository.NewOrderRepository(db),
		itemRepo:   repository.NewOrderItemRepository(db),
		optionRepo: repository.NewOrderItemOptionRepository(db),
		partyRepo:  repository.NewPartyRepository(db),
		guestRepo:  repository.NewPartyGuestRepository(db),
	}
}

func (s *OrderService) List(param OrderListParam) ([]OrderResult, error) {
	if err := s.validatePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.Fetch(repository.OrderFetchParam{
		PartyID: &param.PartyID,
	})
	if err != nil {
		return nil, err
	}

	results := make([]OrderResult, 0, len(orders))
	for i := range orders {
		result, err := s.toOrderResult(s.db, &orders[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *OrderService) Get(param OrderGetParam) (*OrderResult, error) {
	if err := s.validatePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FetchOne(repository.OrderFetchOneParam{
		ID:      &param.ID,
		PartyID: &param.PartyID,
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, utils.NotFound("주문을 찾을 수 없습니다")
	}
	return s.toOrderResult(s.db, order)
}

// Create persists an order with its items and option selections as one unit.
// Menu and option ids are taken as given; they are not checked against the
// party's menu tree here.
func (s *OrderService) Create(param OrderCreateParam) (*OrderResult, error) {
	var result *OrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		party, err := s.partyRepo.WithTx(tx).FetchOne(repository.PartyFetchOneParam{
			ID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if party == nil {
			return utils.NotFound("파티를 찾을 수 없습니다")
		}

		guest, err := s.guestRepo.WithTx(tx).FetchOne(repository.PartyGuestFetchOneParam{
			ID:      &param.GuestID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if guest == nil {
			return utils.Forbidden("해당 파티의 게스트가 아닙니다")
		}

		now := time.Now()
		order := &models.Order{
			PartyID:   param.PartyID,
			GuestID:   param.GuestID,
			Status:    models.OrderStatusReady,
			OrderedAt: now,
			UpdatedAt: now,
		}
		if err := s.orderRepo.WithTx(tx).Save(order); err != nil {
			return err
		}

		itemRepo := s.itemRepo.WithTx(tx)
		optionRepo := s.optionRepo.WithTx(tx)
		for _, itemParam := range param.Items {
			item := &models.OrderItem{
				OrderID:   order.ID,
				MenuID:    itemParam.MenuID,
				Quantity:  itemParam.Quantity,
				Notes:     itemParam.Notes,
				CreatedAt: now,
			}
			if err := itemRepo.Save(item); err != nil {
				return err
			}

			for _, optionID := range itemParam.OptionIDs {
				option := &models.OrderItemOption{
					OrderItemID: item.ID,
					OptionID:    optionID,
					CreatedAt:   now,
				}
				if err := optionRepo.Save(option); err != nil {
					return err
				}
			}
		}

		result, err = s.toOrderResult(tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *OrderService) Update(param OrderUpdateParam) (*OrderResult, error) {
	var result *OrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validatePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		orderRepo := s.orderRepo.WithTx(tx)

		order, err := orderRepo.FetchOne(repository.OrderFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if order == nil {
			return utils.NotFound("주문을 찾을 수 없습니다")
		}

		if param.Status != nil {
			order.Status = *param.Status
		}
		order.UpdatedAt = time.Now()

		if err := orderRepo.Save(order); err != nil {
			return err
		}

		result, err = s.toOrderResult(tx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *OrderService) toOrderResult(db *gorm.DB, order *models.Order) (*OrderResult, error) {
	items, err := s.itemRepo.WithTx(db).Fetch(repository.OrderItemFetchParam{
		OrderID: &order.ID,
	})
	if err != nil {
		return nil, err
	}

	itemResults := make([]OrderItemResult, 0, len(items))
	for i := range items {
		options, err := s.optionRepo.WithTx(db).Fetch(repository.OrderItemOptionFetchParam{
			OrderItemID: &items[i].ID,
		})
		if err != nil {
			return nil, err
		}

		optionResults := make([]OrderItemOptionResult, 0, len(options))
		for _, option := range options {
			optionResults = append(optionResults, OrderItemOptionResult{
				ID:       option.ID,
				OptionID: option.OptionID,
			})
		}

		itemResults = append(itemResults, OrderItemResult{
			ID:       items[i].ID,
			MenuID:   items[i].MenuID,
			Quantity: items[i].Quantity,
			Notes:    items[i].Notes,
			Options:  optionResults,
		})
	}

	return &OrderResult{
		ID:        order.ID,
		PartyID:   order.PartyID,
		GuestID:   order.GuestID,
		Status:    order.Status,
		Items:     itemResults,
		OrderedAt: order.OrderedAt,
		UpdatedAt: order.UpdatedAt,
	}, nil
}

// Host-scoped order access is Forbidden on a party mismatch, unlike menu-tree
// party resolution which is opaque NotFound.
func (s *OrderService) validatePartyOwnership(db *gorm.DB, partyID, hostID uint) error {
	party, err := s.partyRepo.WithTx(db).FetchOne(repository.PartyFetchOneParam{
		ID:     &partyID,
		HostID: &hostID,
	})
	if err != nil {
		return err
	}
	if party == nil {
		return utils.Forbidden("해당 파티에 대한 권한이 없습니다")
	}
	return nil
}
