package usecase

import (
	"context"
	"errors"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/pkg/payment"
)

// errStore stands in for an arbitrary query failure.
var errStore = errors.New("connection refused")

// ---------- users ----------

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
	writes  int
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.failAll {
		return errStore
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.writes++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	cp := *user
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.failAll {
		return nil, errStore
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEncryptedEmail(ctx context.Context, encryptedEmail string) (*entity.User, error) {
	if f.failAll {
		return nil, errStore
	}
	u, ok := f.byEmail[encryptedEmail]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindRoleByID(ctx context.Context, id int64) (entity.UserRole, error) {
	if f.failAll {
		return "", errStore
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u.Role, nil
		}
	}
	return "", nil
}

// ---------- cart ----------

type pairKey struct {
	userID    int64
	productID int64
}

type fakeCartRepo struct {
	lines  map[pairKey]*entity.CartLine
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: map[pairKey]*entity.CartLine{}, nextID: 1}
}

func (f *fakeCartRepo) Upsert(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	key := pairKey{userID, productID}
	if line, ok := f.lines[key]; ok {
		line.Quantity = quantity
		cp := *line
		return &cp, nil
	}
	line := &entity.CartLine{ID: f.nextID, UserID: userID, ProductID: productID, Quantity: quantity}
	f.nextID++
	f.lines[key] = line
	cp := *line
	return &cp, nil
}

func (f *fakeCartRepo) FindLine(ctx context.Context, userID, productID int64) (*entity.CartLine, error) {
	if line, ok := f.lines[pairKey{userID, productID}]; ok {
		cp := *line
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	line, ok := f.lines[pairKey{userID, productID}]
	if !ok {
		return nil, nil
	}
	line.Quantity = quantity
	cp := *line
	return &cp, nil
}

func (f *fakeCartRepo) DeleteLine(ctx context.Context, userID, productID int64) error {
	delete(f.lines, pairKey{userID, productID})
	return nil
}

func (f *fakeCartRepo) ClearByUser(ctx context.Context, userID int64) error {
	for key := range f.lines {
		if key.userID == userID {
			delete(f.lines, key)
		}
	}
	return nil
}

func (f *fakeCartRepo) FindByUser(ctx context.Context, userID int64) ([]*entity.CartLineDetail, error) {
	var out []*entity.CartLineDetail
	for _, line := range f.lines {
		if line.UserID == userID {
			out = append(out, &entity.CartLineDetail{CartLine: *line})
		}
	}
	return out, nil
}

// ---------- orders ----------

type fakeOrderRepo struct {
	orders []*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1}
}

func (f *fakeOrderRepo) CreateBatch(ctx context.Context, lines []*entity.Order) ([]*entity.Order, error) {
	var created []*entity.Order
	for _, line := range lines {
		o := *line
		o.ID = f.nextID
		o.Status = entity.OrderStatusPending
		o.CreatedAt = time.Now()
		f.nextID++
		f.orders = append(f.orders, &o)
		cp := o
		created = append(created, &cp)
	}
	return created, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID {
			o.Status = status
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderDetail, error) {
	var out []*entity.OrderDetail
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, &entity.OrderDetail{Order: *o})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByVendor(ctx context.Context, vendorID int64) ([]*entity.OrderDetail, error) {
	var out []*entity.OrderDetail
	for _, o := range f.orders {
		if o.VendorID == vendorID {
			out = append(out, &entity.OrderDetail{Order: *o})
		}
	}
	return out, nil
}

// ---------- wishlist ----------

type fakeWishlistRepo struct {
	items  map[pairKey]*entity.WishlistItem
	nextID int64
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: map[pairKey]*entity.WishlistItem{}, nextID: 1}
}

func (f *fakeWishlistRepo) Insert(ctx context.Context, userID, productID int64) (*entity.WishlistItem, bool, error) {
	key := pairKey{userID, productID}
	if _, ok := f.items[key]; ok {
		return nil, false, nil
	}
	item := &entity.WishlistItem{ID: f.nextID, UserID: userID, ProductID: productID}
	f.nextID++
	f.items[key] = item
	cp := *item
	return &cp, true, nil
}

func (f *fakeWishlistRepo) FindByUser(ctx context.Context, userID int64) ([]*entity.WishlistItemDetail, error) {
	var out []*entity.WishlistItemDetail
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, &entity.WishlistItemDetail{ProductID: item.ProductID})
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Delete(ctx context.Context, userID, productID int64) error {
	delete(f.items, pairKey{userID, productID})
	return nil
}

// ---------- items ----------

type fakeItemRepo struct {
	items  map[int64]*entity.Item
	nextID int64
	writes int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*entity.Item{}, nextID: 1}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	f.writes++
	item.ItemID = f.nextID
	item.CreatedAt = time.Now()
	f.nextID++
	cp := *item
	f.items[item.ItemID] = &cp
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, itemID int64) (*entity.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for id := int64(1); id < f.nextID; id++ {
		item, ok := f.items[id]
		if !ok {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItemRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeItemRepo) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*entity.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	item.Quantity = quantity
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, itemID int64) (bool, error) {
	if _, ok := f.items[itemID]; !ok {
		return false, nil
	}
	delete(f.items, itemID)
	return true, nil
}

// ---------- categories ----------

type fakeCategoryRepo struct {
	categories []*entity.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	category.ID = f.nextID
	f.nextID++
	cp := *category
	f.categories = append(f.categories, &cp)
	return nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// ---------- blob store ----------

type fakeBlobStore struct {
	objects    map[string][]byte
	puts       []string
	deletes    []string
	failPut    bool
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.failPut {
		return "", errStore
	}
	f.puts = append(f.puts, key)
	f.objects[key] = data
	return "https://blobs.test/" + key, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	if f.failDelete {
		return errStore
	}
	delete(f.objects, path)
	return nil
}

// ---------- payment gateway ----------

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastKey      string
	calls        int
	fail         bool
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*payment.Intent, error) {
	f.calls++
	if f.fail {
		return nil, errStore
	}
	f.lastAmount = amountCents
	f.lastCurrency = currency
	f.lastKey = idempotencyKey
	return &payment.Intent{ID: "pi_test_1", ClientSecret: "pi_test_1_secret"}, nil
}
