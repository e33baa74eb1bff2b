package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/Montsi0721/resturant-site/models"
)

func TestOrderRoundTrip_Integration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	items := []models.OrderItem{{Name: "Tiramisu", Price: 7.99, Quantity: 2}}
	created, err := s.CreateOrder(ctx, models.CreateOrderInput{
		CustomerName:  "A",
		CustomerEmail: "a@x.com",
		CustomerPhone: "555",
		Items:         items,
		TotalAmount:   15.98,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, created.ID)
	})

	if created.ID == 0 {
		t.Error("created order has no id")
	}
	if created.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want %q", created.Status, models.OrderStatusPending)
	}

	all, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	var fetched *models.Order
	for i := range all {
		if all[i].ID == created.ID {
			fetched = &all[i]
			break
		}
	}
	if fetched == nil {
		t.Fatalf("order %d not in listing", created.ID)
	}
	if !reflect.DeepEqual(fetched.Items, items) {
		t.Errorf("items = %+v, want %+v", fetched.Items, items)
	}
	if fetched.TotalAmount != 15.98 {
		t.Errorf("total = %v, want 15.98", fetched.TotalAmount)
	}
}
