package repository

import (
	"testing"

	"restaurant-orders/internal/model"
	"restaurant-orders/pkg/config"
	"restaurant-orders/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Config{DBDriver: "sqlite", DBPath: ":memory:", DBLogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	// customer 1 and tables 1..2 for orders to reference
	require.NoError(t, db.Create(&model.Customer{Name: "Mario Rossi", Email: "mario.rossi@example.com"}).Error)
	require.NoError(t, db.Create(&[]model.Table{{TableNumber: 1}, {TableNumber: 2}}).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createProduct(t *testing.T, repo ProductRepository, name, price string) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Category: "Pizze"}
	require.NoError(t, repo.Create(nil, p))
	require.NoError(t, repo.AddPrice(nil, &model.Price{ProductID: p.ID, Amount: decimal.RequireFromString(price)}))
	return p
}

func TestCurrentPriceIsNewestRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	p := createProduct(t, repo, "Margherita", "7.5")
	cur, err := repo.CurrentPrice(nil, p.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.5").Equal(cur.Amount))

	require.NoError(t, repo.AddPrice(nil, &model.Price{ProductID: p.ID, Amount: decimal.RequireFromString("8.25")}))
	cur, err = repo.CurrentPrice(nil, p.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("8.25").Equal(cur.Amount))

	_, err = repo.CurrentPrice(nil, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindAllPreloadsCurrentPriceOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	p := createProduct(t, repo, "Carbonara", "9")
	require.NoError(t, repo.AddPrice(nil, &model.Price{ProductID: p.ID, Amount: decimal.RequireFromString("9.5")}))
	createProduct(t, repo, "Tiramisu", "5")

	products, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Len(t, products[0].Prices, 1)
	assert.True(t, decimal.RequireFromString("9.5").Equal(products[0].Prices[0].Amount))
	require.Len(t, products[1].Prices, 1)
}

func TestFindByStatusSkipsOrdersWithoutLines(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)

	p := createProduct(t, products, "Peperoni", "8")
	price, err := products.CurrentPrice(nil, p.ID)
	require.NoError(t, err)

	withLines := &model.Order{CustomerID: 1, TableID: 1, Status: model.StatusInProgress,
		Details: []model.OrderDetail{{ProductID: p.ID, PriceID: price.ID, Quantity: 3}}}
	require.NoError(t, orders.Create(nil, withLines))
	require.NoError(t, orders.Create(nil, &model.Order{CustomerID: 1, TableID: 1, Status: model.StatusInProgress}))
	require.NoError(t, orders.Create(nil, &model.Order{CustomerID: 1, TableID: 2, Status: "servito",
		Details: []model.OrderDetail{{ProductID: p.ID, PriceID: price.ID, Quantity: 1}}}))

	found, err := orders.FindByStatus(model.StatusInProgress)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, withLines.ID, found[0].ID)
	require.Len(t, found[0].Details, 1)
	assert.Equal(t, "Peperoni", found[0].Details[0].Product.Name)
	assert.True(t, decimal.NewFromInt(8).Equal(found[0].Details[0].Price.Amount))
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepo(db)

	o := &model.Order{CustomerID: 1, TableID: 1, Status: model.StatusInProgress}
	require.NoError(t, orders.Create(nil, o))
	require.NoError(t, orders.UpdateStatus(o.ID, "pagato", "7"))

	got, err := orders.FindByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "pagato", got.Status)
	assert.Equal(t, "7", got.UpdatedBy)
	assert.Equal(t, model.SystemActor, got.CreatedBy)
}

func TestRevenueByProduct(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)

	margherita := createProduct(t, products, "Margherita", "7.5")
	peperoni := createProduct(t, products, "Peperoni", "8.0")
	createProduct(t, products, "Tiramisu", "5")
	mp, _ := products.CurrentPrice(nil, margherita.ID)
	pp, _ := products.CurrentPrice(nil, peperoni.ID)

	require.NoError(t, orders.Create(nil, &model.Order{CustomerID: 1, TableID: 1, Status: model.StatusInProgress,
		Details: []model.OrderDetail{
			{ProductID: margherita.ID, PriceID: mp.ID, Quantity: 2},
			{ProductID: peperoni.ID, PriceID: pp.ID, Quantity: 1},
		}}))
	require.NoError(t, orders.Create(nil, &model.Order{CustomerID: 1, TableID: 1, Status: "chiuso",
		Details: []model.OrderDetail{{ProductID: margherita.ID, PriceID: mp.ID, Quantity: 1}}}))

	stats, err := NewStatsRepo(db).RevenueByProduct()
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Margherita", stats[0].ProductName)
	assert.True(t, decimal.RequireFromString("22.5").Equal(stats[0].TotalRevenue), stats[0].TotalRevenue.String())
	assert.Equal(t, "Peperoni", stats[1].ProductName)
	assert.True(t, decimal.NewFromInt(8).Equal(stats[1].TotalRevenue))
}

func TestRevenueByProductDecimalSum(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)

	acqua := createProduct(t, products, "Acqua", "0.1")
	price, err := products.CurrentPrice(nil, acqua.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, orders.Create(nil, &model.Order{CustomerID: 1, TableID: 1, Status: model.StatusInProgress,
			Details: []model.OrderDetail{{ProductID: acqua.ID, PriceID: price.ID, Quantity: 1}}}))
	}

	stats, err := NewStatsRepo(db).RevenueByProduct()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "0.3", stats[0].TotalRevenue.String())
}

func TestTableSeedDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepo(db)

	require.NoError(t, db.Where("1 = 1").Delete(&model.Table{}).Error)

	require.NoError(t, repo.SeedDefaults(4))
	require.NoError(t, repo.SeedDefaults(4))

	tables, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, tables, 4)
	assert.Equal(t, 1, tables[0].TableNumber)
	assert.Equal(t, 4, tables[3].TableNumber)
}

func TestCustomerEmailNotUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepo(db)

	require.NoError(t, repo.Create(&model.Customer{Name: "Mario Rossi", Email: "mario.rossi@example.com"}))

	customers, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, customers[0].Email, customers[1].Email)
}

func TestStaffSeedAdmin(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepo(db)

	created, err := repo.SeedAdmin("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.SeedAdmin("admin@example.com", "other")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin.CheckPassword("admin123"))

	require.NoError(t, repo.UpdateLogin(admin.ID, "v2"))
	again, err := repo.FindByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", again.TokenVersion)
	assert.NotNil(t, again.LastLoginAt)
}
