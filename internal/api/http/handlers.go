package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/2Ricky2/canteenpay/internal/domain"
	"github.com/2Ricky2/canteenpay/internal/service"
)

type Handler struct {
	Accounts  service.AccountServiceInterface
	Menu      service.MenuServiceInterface
	Orders    service.OrderServiceInterface
	Analytics service.AnalyticsServiceInterface
	UploadDir string
}

func NewHandler(accounts service.AccountServiceInterface, menu service.MenuServiceInterface, orders service.OrderServiceInterface, analytics service.AnalyticsServiceInterface, uploadDir string) *Handler {
	return &Handler{
		Accounts:  accounts,
		Menu:      menu,
		Orders:    orders,
		Analytics: analytics,
		UploadDir: uploadDir,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/signup", h.signup).Methods("POST")
	r.HandleFunc("/login", h.login).Methods("POST")
	r.HandleFunc("/logout", h.logout).Methods("POST")

	r.HandleFunc("/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/menu", h.requireAdmin(h.createItem)).Methods("POST")
	r.HandleFunc("/menu/{id}", h.requireAdmin(h.updateItem)).Methods("PUT")
	r.HandleFunc("/menu/{id}", h.requireAdmin(h.deleteItem)).Methods("DELETE")

	r.HandleFunc("/users", h.requireAdmin(h.getUsers)).Methods("GET")
	r.HandleFunc("/users/{id}", h.requireAdmin(h.updateUser)).Methods("PUT")
	r.HandleFunc("/users/{id}", h.requireAdmin(h.deleteUser)).Methods("DELETE")

	r.HandleFunc("/upload", h.requireAdmin(h.uploadImage)).Methods("POST")

	r.HandleFunc("/order", h.placeOrder).Methods("POST")
	r.HandleFunc("/orders/{userId}", h.getActiveOrders).Methods("GET")
	r.HandleFunc("/orders/{userId}/all", h.requireAdmin(h.getAllOrders)).Methods("GET")
	r.HandleFunc("/orders/{id}", h.requireAdmin(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/analytics/popular", h.getPopular).Methods("GET")

	// Uploaded food pictures, by filename.
	r.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(h.UploadDir))))
}

// Every response carries success plus either a payload or a message;
// domain failures keep HTTP 200, matching what the mobile client checks.
func respond(w http.ResponseWriter, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, message string) {
	respond(w, map[string]interface{}{"success": true, "message": message})
}

func fail(w http.ResponseWriter, message string) {
	respond(w, map[string]interface{}{"success": false, "message": message})
}

func failWith(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]interface{}{
		"success":   true,
		"status":    "healthy",
		"service":   "canteen-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"user_name"`
		Email    string `json:"user_email"`
		Password string `json:"user_pass"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, "Invalid request body")
		return
	}

	err := h.Accounts.Signup(payload.Name, payload.Email, payload.Password)
	switch {
	case err == nil:
		ok(w, "User created successfully")
	case errors.Is(err, service.ErrMissingFields):
		fail(w, "All fields required")
	case errors.Is(err, service.ErrEmailTaken):
		fail(w, "Email already exists")
	default:
		fail(w, "DB error")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"user_email"`
		Password string `json:"user_pass"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, "Invalid request body")
		return
	}

	user, token, err := h.Accounts.Login(r.Context(), payload.Email, payload.Password)
	switch {
	case err == nil:
		respond(w, map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	case errors.Is(err, service.ErrMissingFields):
		fail(w, "All fields required")
	case errors.Is(err, service.ErrUserNotFound):
		fail(w, "User not found")
	case errors.Is(err, service.ErrBadCredentials):
		fail(w, "Invalid password")
	default:
		fail(w, "DB error")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(sessionHeader)
	if token == "" {
		fail(w, "Missing session token")
		return
	}
	if err := h.Accounts.Logout(r.Context(), token); err != nil {
		fail(w, "Failed to end session")
		return
	}
	ok(w, "Logged out")
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List()
	if err != nil {
		fail(w, "DB fetch error")
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	respond(w, map[string]interface{}{"success": true, "menu": items})
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		fail(w, "Invalid request body")
		return
	}

	err := h.Menu.Create(&item)
	switch {
	case err == nil:
		ok(w, "Item added successfully")
	case errors.Is(err, service.ErrMissingFields):
		fail(w, "Missing required fields")
	default:
		fail(w, "DB insert error")
	}
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		fail(w, "Invalid request body")
		return
	}
	item.ID = id

	err := h.Menu.Update(&item)
	switch {
	case err == nil:
		ok(w, "Item updated successfully")
	case errors.Is(err, service.ErrItemNotFound):
		fail(w, "Food not found")
	default:
		fail(w, "DB update error")
	}
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	err := h.Menu.Delete(id)
	switch {
	case err == nil:
		ok(w, "Food item deleted successfully")
	case errors.Is(err, service.ErrItemNotFound):
		fail(w, "Food not found")
	default:
		fail(w, "Delete failed")
	}
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Accounts.ListUsers()
	if err != nil {
		fail(w, "DB error")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respond(w, map[string]interface{}{"success": true, "users": users})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Name   string  `json:"user_name"`
		Role   string  `json:"role"`
		Wallet float64 `json:"wallet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, "Invalid request body")
		return
	}

	err := h.Accounts.UpdateUser(id, payload.Name, payload.Role, payload.Wallet)
	switch {
	case err == nil:
		ok(w, "User updated")
	case errors.Is(err, service.ErrUserNotFound):
		fail(w, "User not found")
	default:
		fail(w, "DB update error")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	err := h.Accounts.DeleteUser(id)
	switch {
	case err == nil:
		ok(w, "User deleted successfully")
	case errors.Is(err, service.ErrUserNotFound):
		fail(w, "User not found")
	default:
		fail(w, "Delete failed")
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		fail(w, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		fail(w, "No file uploaded")
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		fail(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		fail(w, "Failed to create upload directory")
		return
	}

	filename := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		fail(w, "Failed to save file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		fail(w, "Failed to save file")
		return
	}

	respond(w, map[string]interface{}{"success": true, "filename": filename})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID int `json:"user_id"`
		MenuID int `json:"menu_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, "Invalid request body")
		return
	}

	_, err := h.Orders.Place(r.Context(), payload.UserID, payload.MenuID)
	switch {
	case err == nil:
		ok(w, "Order placed successfully!")
	case errors.Is(err, service.ErrMissingFields):
		fail(w, "Missing data")
	case errors.Is(err, service.ErrItemNotFound):
		fail(w, "Food not found")
	case errors.Is(err, service.ErrOutOfStock):
		fail(w, "Out of stock")
	default:
		fail(w, "Failed to order")
	}
}

func (h *Handler) getActiveOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])

	orders, err := h.Orders.ActiveOrders(userID)
	if err != nil {
		fail(w, "DB error")
		return
	}
	if orders == nil {
		orders = []domain.OrderView{}
	}
	respond(w, map[string]interface{}{"success": true, "orders": orders})
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])

	orders, err := h.Orders.OrdersForUser(userID)
	if err != nil {
		fail(w, "DB error")
		return
	}
	if orders == nil {
		orders = []domain.OrderView{}
	}
	respond(w, map[string]interface{}{"success": true, "orders": orders})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, "Invalid request body")
		return
	}

	err := h.Orders.UpdateStatus(r.Context(), id, payload.Status)
	switch {
	case err == nil:
		ok(w, fmt.Sprintf("Order marked as %s", payload.Status))
	case errors.Is(err, service.ErrMissingFields):
		fail(w, "Missing status")
	case errors.Is(err, service.ErrInvalidStatus):
		fail(w, "Invalid status value")
	case errors.Is(err, service.ErrOrderNotFound):
		fail(w, "Order not found")
	default:
		fail(w, "Database update error")
	}
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.QRCode(id)
	if err != nil {
		fail(w, "Order not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.Analytics.Popular(r.Context(), limit)
	if err != nil {
		fail(w, "DB error")
		return
	}
	if items == nil {
		items = []domain.PopularItem{}
	}
	respond(w, map[string]interface{}{"success": true, "items": items})
}
