package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus maps a raw string onto a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Order is immutable once created, except for status transitions.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem records a purchased line. Price is a snapshot taken at order
// time, so later product price changes never rewrite history. The display
// fields are filled from the products table on read and never stored.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `gorm:"->;-:migration" json:"title"`
	Description string `gorm:"->;-:migration" json:"description"`
	ImageURL    string `gorm:"->;-:migration" json:"image_url"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// CreateOrderFromCart converts the user's cart into an order, atomically.
// Inside one store transaction it snapshots the cart, computes the exact
// total, writes the order and its lines, and clears the cart. If the cart
// is empty nothing happens and ErrEmptyCart is returned. If a concurrent
// call already consumed the cart, the delete below touches fewer rows than
// the snapshot held and the whole transaction rolls back, so at most one
// caller wins a given cart snapshot.
func CreateOrderFromCart(db *gorm.DB, userID uint) (*Order, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		lines, err := CartLines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]OrderItem, 0, len(lines))
		for _, line := range lines {
			total = total.Add(lineSubtotal(line.Price, line.Quantity))
			items = append(items, OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}

		order := Order{
			UserID: userID,
			Total:  total.Round(2).InexactFloat64(),
			Status: OrderStatusPending,
			Items:  items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		cleared, err := ClearCart(tx, userID)
		if err != nil {
			return err
		}
		if cleared != int64(len(lines)) {
			return ErrEmptyCart
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FindOrderByID(db, orderID)
}

// FindOrderByID returns the order with its lines hydrated with product
// display data.
func FindOrderByID(db *gorm.DB, orderID uint) (*Order, error) {
	var order Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := orderItems(db, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// FindOrdersByUser returns all of a user's orders, newest first, each fully
// hydrated.
func FindOrdersByUser(db *gorm.DB, userID uint) ([]Order, error) {
	var orders []Order
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := orderItems(db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// UpdateOrderStatus transitions an order's status. Only pending orders may
// move, and only to completed or cancelled.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status OrderStatus) (*Order, error) {
	if _, err := ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}

	order, err := FindOrderByID(db, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	if order.Status != OrderStatusPending {
		return nil, ErrStatusFinal
	}

	if err := db.Model(&Order{}).Where("id = ?", orderID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func orderItems(db *gorm.DB, orderID uint) ([]OrderItem, error) {
	var items []OrderItem
	err := db.Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.created_at, p.title, p.description, p.image_url").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []OrderItem{}
	}
	return items, nil
}
