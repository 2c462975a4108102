package models

// Restaurant is a place that serves menu items.
type Restaurant struct {
	ID              int64  `json:"restaurant_id"`
	Name            string `json:"restaurant_name"`
	Address         string `json:"restaurant_address"`
	Phone           string `json:"restaurant_phone"`
	MenuDescription string `json:"restaurant_menu_description"`
}

// Menu is a single orderable dish as stored in the menus table.
type Menu struct {
	ID           int64   `json:"menu_id"`
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"menu_name"`
	Description  string  `json:"menu_description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
}

// MenuItem is a menu joined with the restaurant that serves it.
// It is the shape returned by GET /menus.
type MenuItem struct {
	MenuID          int64   `json:"menu_id"`
	MenuName        string  `json:"menu_name"`
	MenuDescription string  `json:"menu_description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`

	Restaurant
}
