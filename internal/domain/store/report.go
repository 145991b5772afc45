package store

import (
	"fmt"
	"io"
)

func (s *OnlineStore) DisplayProducts(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Available Products:"); err != nil {
		return err
	}
	for _, p := range s.products {
		if _, err := fmt.Fprintf(w, "%s - $%s - Stock: %d\n", p.Name(), p.Price().StringFixed(2), p.Stock()); err != nil {
			return err
		}
	}
	return nil
}

func (s *OnlineStore) DisplayCustomers(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Registered Customers:"); err != nil {
		return err
	}
	for _, name := range s.CustomerNames() {
		if _, err := fmt.Fprintf(w, "- %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
