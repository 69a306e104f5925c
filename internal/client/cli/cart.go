package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/avolkov/storefront/internal/client/models"
)

// CartAdd puts a product into the local cart. The cart belongs to the
// current session and disappears with it.
func (a *App) CartAdd(ctx context.Context, product string, qty int) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	if err := a.session.AddCartItem(ctx, models.CartItem{Product: product, Qty: qty}); err != nil {
		log.Printf("Failed to add to cart: %s", err.Error())
		return err
	}

	fmt.Printf("Added %s x%d\n", product, qty)
	return nil
}

// CartShow prints the local cart lines.
func (a *App) CartShow(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	items, err := a.session.CartItems(ctx)
	if err != nil {
		log.Printf("Failed to read cart: %s", err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%s\tx%d\n", it.Product, it.Qty)
	}
	return nil
}
