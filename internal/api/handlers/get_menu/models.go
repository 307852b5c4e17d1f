package get_menu

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// MenuResponse HTTP response model: меню, ключованное id пункта
type MenuResponse struct {
	MenuItems map[int]MenuItemView `json:"menu_items"`
}

// MenuItemView представление пункта меню на wire
type MenuItemView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PrepMinutes int      `json:"time"`
	Allergens   []string `json:"allergens"`
}

// FromDomainMenu конвертирует доменное меню в HTTP response
func FromDomainMenu(menu domain.Menu) *MenuResponse {
	items := make(map[int]MenuItemView, len(menu))
	for id, item := range menu {
		items[id] = MenuItemView{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			PrepMinutes: item.PrepMinutes,
			Allergens:   item.Allergens,
		}
	}
	return &MenuResponse{MenuItems: items}
}
