package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	price := decimal.RequireFromString("19.99")

	product, err := NewProduct("Widget", "A fine widget", price, 2, "tools", 40)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if product.ID != 0 {
		t.Errorf("Expected zero ID before insert, got %d", product.ID)
	}

	if product.Name != "Widget" {
		t.Errorf("Expected name Widget, got %s", product.Name)
	}

	if !product.Price.Equal(price) {
		t.Errorf("Expected price %s, got %s", price, product.Price)
	}

	// Test invalid name
	_, err = NewProduct("", "desc", price, 1, "tools", 1)
	if err != ErrEmptyProductName {
		t.Errorf("Expected error %v, got %v", ErrEmptyProductName, err)
	}

	// Test negative price
	_, err = NewProduct("Widget", "desc", decimal.NewFromInt(-1), 1, "tools", 1)
	if err != ErrNegativePrice {
		t.Errorf("Expected error %v, got %v", ErrNegativePrice, err)
	}

	// Test negative quantity
	_, err = NewProduct("Widget", "desc", price, -1, "tools", 1)
	if err != ErrNegativeQuantity {
		t.Errorf("Expected error %v, got %v", ErrNegativeQuantity, err)
	}

	// Test negative inventory
	_, err = NewProduct("Widget", "desc", price, 1, "tools", -1)
	if err != ErrNegativeInventory {
		t.Errorf("Expected error %v, got %v", ErrNegativeInventory, err)
	}
}

func TestNewCartItem(t *testing.T) {
	item, err := NewCartItem(3, 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if item.OrderID != 3 || item.ProductID != 7 {
		t.Errorf("Expected (3, 7), got (%d, %d)", item.OrderID, item.ProductID)
	}

	if _, err := NewCartItem(0, 7); err != ErrEmptyCartOrderID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCartOrderID, err)
	}

	if _, err := NewCartItem(3, 0); err != ErrEmptyCartProductID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCartProductID, err)
	}
}
