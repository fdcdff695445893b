// cart.go

package main

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const (
	msgCartMissing  = "Missing required fields: name, price, or quantity."
	msgCartAdded    = "Item added to cart successfully."
	msgInvalidPrice = "Invalid price or quantity."
)

// incrementQuantity keeps the first price and image seen for a name. The
// total saturates at maxQuantity.
func incrementQuantity(existing, incoming CartItem) CartItem {
	sum := int64(existing.Quantity) + int64(incoming.Quantity)
	if sum > maxQuantity {
		sum = maxQuantity
	}
	existing.Quantity = int(sum)
	return existing
}

func (a *API) getCart(c *gin.Context) {
	cart := a.Cart.List()
	a.log.Debug("fetching cart", slog.Int("items", len(cart)))
	c.JSON(200, cart)
}

func (a *API) addToCart(c *gin.Context) {
	var req CartAddRequest
	if err := bindRequest(c, &req); err != nil {
		a.rejectCart(c, err)
		return
	}
	item, err := req.toItem()
	if err != nil {
		a.rejectCart(c, err)
		return
	}

	stored, merged := a.Cart.UpsertByKey(item, incrementQuantity)
	if merged {
		a.log.Info("cart quantity updated", slog.String("name", stored.Name), slog.Int("quantity", stored.Quantity))
	} else {
		a.log.Info("cart item added", slog.String("name", stored.Name), slog.Int("quantity", stored.Quantity))
	}

	c.JSON(200, gin.H{"message": msgCartAdded, "cart": a.Cart.List()})
}

func (a *API) rejectCart(c *gin.Context, err error) {
	a.log.Warn("cart add rejected", slog.Any("err", err))
	if errors.Is(err, ErrInvalidNumber) {
		c.JSON(400, gin.H{"error": msgInvalidPrice})
		return
	}
	c.JSON(400, gin.H{"error": msgCartMissing})
}
