package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Souris Gaming", 49.00)

	_, err := AddCartItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := AddCartItem(db, user.ID, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "re-adding must not duplicate the line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")

	_, err := AddCartItem(db, user.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddCartItemRepeatedUnitAdds(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Stylo", 5.00)

	_, err := AddCartItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)
	cart, err := AddCartItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 10.00, cart.Items[0].Subtotal)
	assert.Equal(t, "10.00", cart.Total)
}

func TestUpdateCartQuantityOverwrites(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Clavier", 89.00)

	_, err := AddCartItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := UpdateCartQuantity(db, user.ID, product.ID, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateCartQuantityZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Clavier", 89.00)

	_, err := AddCartItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := UpdateCartQuantity(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total)
}

func TestUpdateCartQuantityMissingLineIsNoOp(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Clavier", 89.00)

	cart, err := UpdateCartQuantity(db, user.ID, product.ID, 4)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	product := seedProduct(t, db, "Casque", 129.00)

	_, err := AddCartItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveCartItem(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = RemoveCartItem(db, user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestGetCartTotalIsExact(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	// 0.10 and 19.99 are classic float traps; the decimal sum must still
	// come out exact.
	cheap := seedProduct(t, db, "Autocollant", 0.10)
	pricey := seedProduct(t, db, "Casque", 19.99)

	_, err := AddCartItem(db, user.ID, cheap.ID, 3)
	require.NoError(t, err)
	cart, err := AddCartItem(db, user.ID, pricey.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, "40.28", cart.Total)
}

func TestGetCartSeparatesUsers(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	product := seedProduct(t, db, "Souris", 49.00)

	_, err := AddCartItem(db, alice.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := GetCart(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total)
}
