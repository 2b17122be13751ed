package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusActive    = "Active"
	StatusPaid      = "Paid"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Menu categories as the client renders them.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategorySnacks    = "Snacks"
	CategoryDrinks    = "Drinks"
)

type User struct {
	ID           int       `json:"user_id"`
	Name         string    `json:"user_name"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Wallet       float64   `json:"wallet"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	MenuID     int       `json:"menu_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderView is an order joined with its menu item, the shape the
// client's order screens consume.
type OrderView struct {
	ID         int     `json:"id"`
	Status     string  `json:"status"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	FoodName   string  `json:"food_name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
}

// OrderEvent is the message published to Kafka on order activity.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	UserID     int       `json:"user_id"`
	MenuID     int       `json:"menu_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// PopularItem is one row of the popularity leaderboard.
type PopularItem struct {
	MenuID   int     `json:"menu_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}
