package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartmodel "bookvault-backend/internal/domains/cart/model"
	cartrepo "bookvault-backend/internal/domains/cart/repository"
	"bookvault-backend/internal/domains/inventory"
	"bookvault-backend/internal/domains/order/model"
	"bookvault-backend/internal/domains/order/repository"
)

type fakeLedger struct {
	mu    sync.Mutex
	stock map[int64]int
}

var _ inventory.Ledger = (*fakeLedger)(nil)

func (f *fakeLedger) Reserve(ctx context.Context, bookID int64, quantity int) error {
	return f.ReserveTx(ctx, nil, bookID, quantity)
}

func (f *fakeLedger) Release(ctx context.Context, bookID int64, quantity int) error {
	return f.ReleaseTx(ctx, nil, bookID, quantity)
}

func (f *fakeLedger) ReserveTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stock[bookID] < quantity {
		return inventory.ErrInsufficientStock
	}
	f.stock[bookID] -= quantity
	return nil
}

func (f *fakeLedger) ReleaseTx(ctx context.Context, tx pgx.Tx, bookID int64, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stock[bookID] += quantity
	return nil
}

type fakeCartRepo struct {
	items  map[int64]cartmodel.CartItem
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64]cartmodel.CartItem), nextID: 1}
}

var _ cartrepo.RepositoryInterface = (*fakeCartRepo)(nil)

func (f *fakeCartRepo) BeginTx(ctx context.Context) (pgx.Tx, error)     { return nil, nil }
func (f *fakeCartRepo) CommitTx(ctx context.Context, tx pgx.Tx) error   { return nil }
func (f *fakeCartRepo) RollbackTx(ctx context.Context, tx pgx.Tx) error { return nil }

func (f *fakeCartRepo) GetItemsByUser(ctx context.Context, userID int64) ([]cartmodel.CartItem, error) {
	return f.GetItemsByUserTx(ctx, nil, userID)
}

func (f *fakeCartRepo) GetItemsByUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]cartmodel.CartItem, error) {
	out := make([]cartmodel.CartItem, 0)
	for id := int64(1); id < f.nextID; id++ {
		if item, ok := f.items[id]; ok && item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) GetItemByBookTx(ctx context.Context, tx pgx.Tx, userID, bookID int64) (*cartmodel.CartItem, error) {
	return nil, cartmodel.ErrCartItemNotFound
}

func (f *fakeCartRepo) GetItemByIDTx(ctx context.Context, tx pgx.Tx, itemID int64) (*cartmodel.CartItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, cartmodel.ErrCartItemNotFound
	}
	return &item, nil
}

func (f *fakeCartRepo) UpsertItemTx(ctx context.Context, tx pgx.Tx, userID, bookID int64, quantity int) error {
	f.items[f.nextID] = cartmodel.CartItem{
		ID: f.nextID, UserID: userID, BookID: bookID, Quantity: quantity,
	}
	f.nextID++
	return nil
}

func (f *fakeCartRepo) DeleteItemTx(ctx context.Context, tx pgx.Tx, itemID int64) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) DeleteAllByUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartRepo) seed(userID, bookID int64, price int64, quantity int) {
	f.items[f.nextID] = cartmodel.CartItem{
		ID:       f.nextID,
		UserID:   userID,
		BookID:   bookID,
		BookName: "Seeded Book",
		Price:    decimal.NewFromInt(price),
		Quantity: quantity,
	}
	f.nextID++
}

type fakeOrderRepo struct {
	orders map[int64]model.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]model.Order), nextID: 1}
}

var _ repository.RepositoryInterface = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) BeginTx(ctx context.Context) (pgx.Tx, error)     { return nil, nil }
func (f *fakeOrderRepo) CommitTx(ctx context.Context, tx pgx.Tx) error   { return nil }
func (f *fakeOrderRepo) RollbackTx(ctx context.Context, tx pgx.Tx) error { return nil }

func (f *fakeOrderRepo) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	order.ID = f.nextID
	f.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	f.orders[order.ID] = *order
	return order, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return &o, nil
}

func (f *fakeOrderRepo) GetByIDTx(ctx context.Context, tx pgx.Tx, orderID int64) (*model.Order, error) {
	return f.GetByID(ctx, orderID)
}

func (f *fakeOrderRepo) GetByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	out := make([]model.Order, 0)
	for id := int64(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok && o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, orderID int64, status string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	o.Status = status
	f.orders[orderID] = o
	return nil
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	cart := newFakeCartRepo()
	cart.seed(100, 1, 12, 2)
	cart.seed(100, 2, 30, 1)
	svc := NewOrderService(newFakeOrderRepo(), cart, &fakeLedger{stock: map[int64]int{}})

	order, err := svc.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPlaced, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.NewFromInt(54).Equal(order.Total), "total was %s", order.Total)
	assert.True(t, decimal.NewFromInt(12).Equal(order.Items[0].UnitPrice))

	remaining, err := cart.GetItemsByUser(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeCartRepo(), &fakeLedger{stock: map[int64]int{}})

	_, err := svc.PlaceOrder(context.Background(), 100)
	assert.ErrorIs(t, err, cartmodel.ErrCartEmpty)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	cart := newFakeCartRepo()
	cart.seed(100, 1, 12, 2)
	cart.seed(100, 2, 30, 3)
	ledger := &fakeLedger{stock: map[int64]int{1: 0, 2: 0}}
	svc := NewOrderService(newFakeOrderRepo(), cart, ledger)

	order, err := svc.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)

	cancelled, err := svc.CancelOrder(context.Background(), 100, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Equal(t, 2, ledger.stock[1])
	assert.Equal(t, 3, ledger.stock[2])
}

func TestCancelOrderTwiceFails(t *testing.T) {
	cart := newFakeCartRepo()
	cart.seed(100, 1, 12, 2)
	ledger := &fakeLedger{stock: map[int64]int{1: 0}}
	svc := NewOrderService(newFakeOrderRepo(), cart, ledger)

	order, err := svc.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)

	_, err = svc.CancelOrder(context.Background(), 100, order.ID)
	require.NoError(t, err)

	_, err = svc.CancelOrder(context.Background(), 100, order.ID)
	assert.ErrorIs(t, err, model.ErrOrderAlreadyCancelled)
	assert.Equal(t, 2, ledger.stock[1], "stock must not be released twice")
}

func TestCancelOrderOtherUser(t *testing.T) {
	cart := newFakeCartRepo()
	cart.seed(100, 1, 12, 2)
	ledger := &fakeLedger{stock: map[int64]int{1: 0}}
	svc := NewOrderService(newFakeOrderRepo(), cart, ledger)

	order, err := svc.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)

	_, err = svc.CancelOrder(context.Background(), 200, order.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Equal(t, 0, ledger.stock[1])
}

func TestGetOrderOtherUser(t *testing.T) {
	cart := newFakeCartRepo()
	cart.seed(100, 1, 12, 2)
	svc := NewOrderService(newFakeOrderRepo(), cart, &fakeLedger{stock: map[int64]int{}})

	order, err := svc.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), 200, order.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	got, err := svc.GetOrder(context.Background(), 100, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetOrdersEmpty(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeCartRepo(), &fakeLedger{stock: map[int64]int{}})

	orders, err := svc.GetOrders(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
