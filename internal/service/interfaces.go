package service

import (
	"context"
	"time"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(id int, name, role string, wallet float64) (int64, error)
	DeleteUser(id int) (int64, error)
}

type MenuRepository interface {
	CreateItem(item *domain.MenuItem) error
	ListItems() ([]domain.MenuItem, error)
	GetItem(id int) (*domain.MenuItem, error)
	UpdateItem(item *domain.MenuItem) (int64, error)
	DeleteItem(id int) (int64, error)
}

type OrderRepository interface {
	PlaceOrder(userID, menuID int) (*domain.Order, bool, error)
	ActiveOrders(userID int) ([]domain.OrderView, error)
	OrdersForUser(userID int) ([]domain.OrderView, error)
	GetOrder(orderID int) (*domain.Order, error)
	UpdateOrderStatus(orderID int, status string) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type SessionRepository interface {
	Save(ctx context.Context, token string, user *domain.User) error
	Get(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PopularityRepository interface {
	RecordOrder(ctx context.Context, menuID int, at time.Time) error
	Top(ctx context.Context, day time.Time, limit int) (map[int]float64, error)
}

type AccountServiceInterface interface {
	Signup(name, email, password string) error
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(id int, name, role string, wallet float64) error
	DeleteUser(id int) error
}

type MenuServiceInterface interface {
	List() ([]domain.MenuItem, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id int) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, userID, menuID int) (*domain.Order, error)
	ActiveOrders(userID int) ([]domain.OrderView, error)
	OrdersForUser(userID int) ([]domain.OrderView, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	QRCode(orderID int) ([]byte, error)
}

type AnalyticsServiceInterface interface {
	Popular(ctx context.Context, limit int) ([]domain.PopularItem, error)
}
