package storage

import (
	"database/sql"
	"fmt"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			user_name TEXT NOT NULL,
			user_email TEXT NOT NULL UNIQUE,
			user_pass TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			wallet NUMERIC(10,2) NOT NULL DEFAULT 0.00,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			menu_id INTEGER NOT NULL REFERENCES menu_items(id) ON DELETE RESTRICT,
			quantity INTEGER NOT NULL DEFAULT 1,
			total_price NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'Active',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (user_name, user_email, user_pass, role, wallet) VALUES ($1, $2, $3, $4, $5) RETURNING user_id, created_at",
		user.Name, user.Email, user.PasswordHash, user.Role, user.Wallet,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT user_id, user_name, user_email, user_pass, role, wallet, created_at
		FROM users
		WHERE user_email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Wallet, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers() ([]domain.User, error) {
	rows, err := r.DB.Query(`
		SELECT user_id, user_name, user_email, role, wallet, created_at
		FROM users
		ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Wallet, &user.CreatedAt); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *PostgresRepository) UpdateUser(id int, name, role string, wallet float64) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE users SET user_name=$1, role=$2, wallet=$3 WHERE user_id=$4",
		name, role, wallet, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteUser(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM users WHERE user_id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_items (name, category, price, image_url, quantity) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		item.Name, item.Category, item.Price, item.ImageURL, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, category, price, COALESCE(image_url, ''), quantity, created_at
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.ImageURL, &item.Quantity, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, category, price, COALESCE(image_url, ''), quantity, created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.ImageURL, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateItem(item *domain.MenuItem) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, category=$2, price=$3, image_url=$4, quantity=$5
		WHERE id=$6`,
		item.Name, item.Category, item.Price, item.ImageURL, item.Quantity, item.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// PlaceOrder decrements stock and inserts the order in one transaction.
// The conditional UPDATE keeps quantity from ever going below zero under
// concurrent placements; ok reports whether a unit of stock was taken.
// sql.ErrNoRows means the menu item does not exist.
func (r *PostgresRepository) PlaceOrder(userID, menuID int) (*domain.Order, bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var price float64
	if err := tx.QueryRow("SELECT price FROM menu_items WHERE id = $1", menuID).Scan(&price); err != nil {
		return nil, false, err
	}

	result, err := tx.Exec(
		"UPDATE menu_items SET quantity = quantity - 1 WHERE id = $1 AND quantity > 0",
		menuID)
	if err != nil {
		return nil, false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, nil
	}

	order := &domain.Order{
		UserID:     userID,
		MenuID:     menuID,
		Quantity:   1,
		TotalPrice: price,
		Status:     domain.StatusActive,
	}
	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, menu_id, quantity, total_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, order.UserID, order.MenuID, order.Quantity, order.TotalPrice, order.Status).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return order, true, nil
}

func (r *PostgresRepository) ActiveOrders(userID int) ([]domain.OrderView, error) {
	return r.queryOrderViews(`
		SELECT o.id, o.status, o.quantity, o.total_price, m.name AS food_name, m.price, COALESCE(m.image_url, '')
		FROM orders o
		JOIN menu_items m ON o.menu_id = m.id
		WHERE o.user_id = $1 AND o.status = 'Active'
		ORDER BY o.id DESC`, userID)
}

func (r *PostgresRepository) OrdersForUser(userID int) ([]domain.OrderView, error) {
	return r.queryOrderViews(`
		SELECT o.id, o.status, o.quantity, o.total_price, m.name AS food_name, m.price, COALESCE(m.image_url, '')
		FROM orders o
		JOIN menu_items m ON o.menu_id = m.id
		WHERE o.user_id = $1
		ORDER BY o.id DESC`, userID)
}

func (r *PostgresRepository) queryOrderViews(query string, args ...interface{}) ([]domain.OrderView, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderView
	for rows.Next() {
		var view domain.OrderView
		if err := rows.Scan(&view.ID, &view.Status, &view.Quantity, &view.TotalPrice, &view.FoodName, &view.Price, &view.ImageURL); err != nil {
			continue
		}
		orders = append(orders, view)
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_id, menu_id, quantity, total_price, status, created_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.UserID, &order.MenuID, &order.Quantity, &order.TotalPrice, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

// PopularItemsFallback aggregates order counts straight from Postgres,
// used when the Redis leaderboard has nothing for the requested window.
func (r *PostgresRepository) PopularItemsFallback(limit int) ([]domain.PopularItem, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.name, m.category, COUNT(o.id) AS score
		FROM menu_items m
		JOIN orders o ON o.menu_id = m.id
		GROUP BY m.id, m.name, m.category
		ORDER BY score DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuID, &item.Name, &item.Category, &item.Score); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
