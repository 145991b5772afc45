package customer

import (
	"fmt"
	"io"
)

// DisplayCart writes one line per cart entry in insertion order.
func (c *Customer) DisplayCart(w io.Writer) error {
	for i := range c.cart {
		if _, err := fmt.Fprintf(w, "%s - $%s\n", c.cart[i].Name(), c.cart[i].Price().StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Customer) DisplayWishlist(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Wishlist for %s:\n", c.name); err != nil {
		return err
	}
	for i := range c.wishlist {
		if _, err := fmt.Fprintf(w, "%s - $%s\n", c.wishlist[i].Name(), c.wishlist[i].Price().StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Customer) TrackOrders(w io.Writer) error {
	for _, o := range c.orders {
		if _, err := fmt.Fprintf(w, "Product: %s, Total Price: $%s, Status: %s\n", o.ProductName, o.TotalPrice.StringFixed(2), o.Status); err != nil {
			return err
		}
	}
	return nil
}

func (c *Customer) ViewReviews(w io.Writer) error {
	for _, r := range c.reviews {
		if _, err := fmt.Fprintf(w, "Product: %s, Rating: %d stars, Comment: %s\n", r.ProductName, r.Rating, r.Comment); err != nil {
			return err
		}
	}
	return nil
}
