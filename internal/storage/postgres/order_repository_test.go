package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/onu24/learnsphere-v1/internal/domain"
	"github.com/onu24/learnsphere-v1/internal/testutil"
)

func TestOrderRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewOrderRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	newOrder := func(ref string) domain.Order {
		return domain.Order{
			ID:               uuid.NewString(),
			CustomerName:     "Alice",
			PayerEmail:       "a@x.com",
			PaymentReference: ref,
			Courses:          []string{"Web Development Fundamentals"},
			TotalAmount:      49,
			Status:           domain.OrderStatusConfirmed,
			CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
		}
	}

	t.Run("CreateOrder persists and FindOrderByPaymentReference returns it", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		order := newOrder("UTR123456")
		if err := repo.CreateOrder(ctx, order); err != nil {
			t.Fatalf("create order: %v", err)
		}

		found, err := repo.FindOrderByPaymentReference(ctx, "UTR123456")
		if err != nil {
			t.Fatalf("find order: %v", err)
		}
		if found == nil {
			t.Fatalf("expected order, got nil")
		}
		if found.ID != order.ID || found.PaymentReference != "UTR123456" {
			t.Fatalf("unexpected order: %+v", found)
		}
		if len(found.Courses) != 1 || found.Courses[0] != "Web Development Fundamentals" {
			t.Fatalf("unexpected courses: %v", found.Courses)
		}
		if found.UserID != nil {
			t.Fatalf("expected guest order, got user %v", *found.UserID)
		}

		missing, err := repo.FindOrderByPaymentReference(ctx, "UTR000000")
		if err != nil {
			t.Fatalf("find missing: %v", err)
		}
		if missing != nil {
			t.Fatalf("expected nil for unknown reference, got %+v", missing)
		}
	})

	t.Run("duplicate payment reference is rejected by the unique index", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if err := repo.CreateOrder(ctx, newOrder("UTR777777")); err != nil {
			t.Fatalf("first create: %v", err)
		}
		err := repo.CreateOrder(ctx, newOrder("UTR777777"))
		if err != domain.ErrDuplicateReference {
			t.Fatalf("expected ErrDuplicateReference, got %v", err)
		}

		orders, err := repo.ListOrders(ctx)
		if err != nil {
			t.Fatalf("list orders: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected exactly one order, got %d", len(orders))
		}
	})

	t.Run("ListOrders returns newest first", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		older := newOrder("UTR111111")
		older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		newer := newOrder("UTR222222")

		if err := repo.CreateOrder(ctx, older); err != nil {
			t.Fatalf("create older: %v", err)
		}
		if err := repo.CreateOrder(ctx, newer); err != nil {
			t.Fatalf("create newer: %v", err)
		}

		orders, err := repo.ListOrders(ctx)
		if err != nil {
			t.Fatalf("list orders: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[0].PaymentReference != "UTR222222" {
			t.Fatalf("expected newest first, got %s", orders[0].PaymentReference)
		}
	})

	t.Run("UpdateOrderStatus confirms within a transaction", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		order := newOrder("UTR333333")
		order.Status = domain.OrderStatusPending
		if err := repo.CreateOrder(ctx, order); err != nil {
			t.Fatalf("create order: %v", err)
		}

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			got, err := repo.GetOrderForUpdate(txCtx, order.ID)
			if err != nil {
				t.Fatalf("get for update: %v", err)
			}
			if got.Status != domain.OrderStatusPending {
				t.Fatalf("expected Pending, got %s", got.Status)
			}
			return repo.UpdateOrderStatus(txCtx, order.ID, domain.OrderStatusConfirmed)
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}

		found, err := repo.FindOrderByPaymentReference(ctx, "UTR333333")
		if err != nil {
			t.Fatalf("find order: %v", err)
		}
		if found.Status != domain.OrderStatusConfirmed {
			t.Fatalf("expected Confirmed, got %s", found.Status)
		}
	})

	t.Run("missing and malformed ids map to domain errors", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if _, err := repo.GetOrderForUpdate(ctx, uuid.NewString()); err != domain.ErrOrderNotFound {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if _, err := repo.GetOrderForUpdate(ctx, "not-a-uuid"); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if err := repo.UpdateOrderStatus(ctx, uuid.NewString(), domain.OrderStatusConfirmed); err != domain.ErrOrderNotFound {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("Stats aggregates revenue and counts", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		testutil.InsertCourse(t, ctx, pool, "Go", 49)
		testutil.InsertUser(t, ctx, pool, "alice", "a@x.com", domain.RoleUser)

		confirmed := newOrder("UTR444444")
		if err := repo.CreateOrder(ctx, confirmed); err != nil {
			t.Fatalf("create confirmed: %v", err)
		}
		pending := newOrder("UTR555555")
		pending.Status = domain.OrderStatusPending
		pending.TotalAmount = 10
		if err := repo.CreateOrder(ctx, pending); err != nil {
			t.Fatalf("create pending: %v", err)
		}

		stats, err := repo.Stats(ctx)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.TotalOrders != 2 || stats.PendingOrders != 1 || stats.ConfirmedOrders != 1 {
			t.Fatalf("unexpected order counts: %+v", stats)
		}
		if stats.TotalRevenue != 59 {
			t.Fatalf("expected revenue 59, got %v", stats.TotalRevenue)
		}
		if stats.TotalUsers != 1 || stats.TotalCourses != 1 {
			t.Fatalf("unexpected user/course counts: %+v", stats)
		}
	})
}
