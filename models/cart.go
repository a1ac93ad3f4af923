package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartItem is one unpurchased (user, product, quantity) selection.
// The (user_id, product_id) pair is unique: re-adding a product increments
// the existing row instead of duplicating it.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CartItem) TableName() string { return "cart" }

// CartLine is a cart row joined with live product display data.
type CartLine struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Subtotal    float64   `json:"subtotal"`
}

// CartView is the full cart as returned to clients: lines plus the running
// total formatted to two decimal places.
type CartView struct {
	Items []CartLine `json:"items"`
	Total string     `json:"total"`
}

// lineSubtotal computes quantity × price exactly, rounded to the cent.
func lineSubtotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2)
}

// CartLines loads a user's cart rows joined with product metadata,
// newest first. Every call reads straight from the store; nothing is cached.
func CartLines(db *gorm.DB, userID uint) ([]CartLine, error) {
	var lines []CartLine
	err := db.Table("cart AS c").
		Select("c.id, c.product_id, c.quantity, c.created_at, p.title, p.price, p.description, p.image_url").
		Joins("JOIN products p ON p.id = c.product_id").
		Where("c.user_id = ?", userID).
		Order("c.created_at DESC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].Subtotal = lineSubtotal(lines[i].Price, lines[i].Quantity).InexactFloat64()
	}
	return lines, nil
}

// GetCart returns the user's current lines and exact total.
func GetCart(db *gorm.DB, userID uint) (*CartView, error) {
	lines, err := CartLines(db, userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(lineSubtotal(line.Price, line.Quantity))
	}
	if lines == nil {
		lines = []CartLine{}
	}
	return &CartView{Items: lines, Total: total.StringFixed(2)}, nil
}

// AddCartItem inserts a line for (user, product) or increments the existing
// one. The upsert is a single statement so two concurrent adds for the same
// pair both land instead of one clobbering the other.
func AddCartItem(db *gorm.DB, userID, productID uint, quantity int) (*CartView, error) {
	if _, err := FindProductByID(db, productID); err != nil {
		return nil, err
	}

	item := CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// UpdateCartQuantity overwrites a line's quantity. A quantity of zero or
// less removes the line; a missing line is a silent no-op.
func UpdateCartQuantity(db *gorm.DB, userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return RemoveCartItem(db, userID, productID)
	}
	err := db.Model(&CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// RemoveCartItem deletes the line if present. Idempotent.
func RemoveCartItem(db *gorm.DB, userID, productID uint) (*CartView, error) {
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&CartItem{}).Error
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// ClearCart deletes all of a user's lines and reports how many went.
// Used by order creation inside its transaction.
func ClearCart(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
