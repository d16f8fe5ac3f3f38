package store

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// A named shared-cache in-memory database keeps all pooled connections
	// on the same data; one open connection avoids SQLITE_BUSY under the
	// concurrency tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func seedUser(t *testing.T, st *Store, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Role: "staff", Password: "not-a-real-hash"}
	require.NoError(t, st.CreateUser(user, nil))
	return user
}

func seedMenuItem(t *testing.T, st *Store, name string, price float64) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Name: name, Price: price}
	require.NoError(t, st.CreateMenuItem(item))
	return item
}

func TestCreateUserLinksBranches(t *testing.T) {
	st := newTestStore(t)

	b1 := &models.Branch{Name: "Downtown"}
	b2 := &models.Branch{Name: "Harbor"}
	require.NoError(t, st.CreateBranch(b1))
	require.NoError(t, st.CreateBranch(b2))

	user := &models.User{Name: "Ada", Email: "ada@example.com", Role: "manager", Password: "hash"}
	require.NoError(t, st.CreateUser(user, []uint{b1.ID, b2.ID}))

	got, err := st.getUserWithBranches(user.ID)
	require.NoError(t, err)
	assert.Len(t, got.Branches, 2)
}

func TestCreateUserUnknownBranchRollsBack(t *testing.T) {
	st := newTestStore(t)

	user := &models.User{Name: "Ada", Email: "ada@example.com", Role: "manager", Password: "hash"}
	err := st.CreateUser(user, []uint{999})
	assert.ErrorIs(t, err, ErrNotFound)

	// The user create must not survive the failed branch link.
	_, err = st.GetUserByEmail("ada@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := newTestStore(t)

	seedUser(t, st, "dup@example.com")
	err := st.CreateUser(&models.User{Name: "Other", Email: "dup@example.com", Role: "staff", Password: "hash"}, nil)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAddAndRemoveBranch(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "link@example.com")
	branch := &models.Branch{Name: "Downtown"}
	require.NoError(t, st.CreateBranch(branch))

	got, err := st.AddBranch(user.ID, branch.ID)
	require.NoError(t, err)
	require.Len(t, got.Branches, 1)
	assert.Equal(t, "Downtown", got.Branches[0].Name)

	_, err = st.AddBranch(user.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.AddBranch(999, branch.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = st.RemoveBranch(user.ID, branch.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Branches)

	// Unlinking a branch that was never linked is a no-op, not an error.
	_, err = st.RemoveBranch(user.ID, 999)
	assert.NoError(t, err)
}

func TestDeleteMissingRowsAreStoreErrors(t *testing.T) {
	st := newTestStore(t)

	for _, del := range []func(uint) error{st.DeleteUser, st.DeleteInventoryItem, st.DeleteMenuItem} {
		err := del(12345)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestCreateOrderTotal(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "order@example.com")
	soup := seedMenuItem(t, st, "Soup", 10)
	bread := seedMenuItem(t, st, "Bread", 5)

	order, err := st.CreateOrder(user.ID, []OrderLine{
		{MenuItemID: soup.ID, Quantity: 2},
		{MenuItemID: bread.ID, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 35.0, order.TotalPrice)
	assert.Len(t, order.Items, 2)
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{6}$`), order.OrderNumber)

	got, err := st.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.TotalPrice)
	assert.Len(t, got.Items, 2)
}

func TestCreateOrderTotalFixedAtOrderTime(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "order@example.com")
	soup := seedMenuItem(t, st, "Soup", 10)

	order, err := st.CreateOrder(user.ID, []OrderLine{{MenuItemID: soup.ID, Quantity: 1}})
	require.NoError(t, err)

	soup.Price = 99
	require.NoError(t, st.UpdateMenuItem(soup))

	got, err := st.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.TotalPrice)
}

func TestCreateOrderUnknownMenuItem(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "order@example.com")
	soup := seedMenuItem(t, st, "Soup", 10)

	_, err := st.CreateOrder(user.ID, []OrderLine{
		{MenuItemID: soup.ID, Quantity: 1},
		{MenuItemID: 999, Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrUnknownMenuItem)

	// Nothing may be persisted from a rejected order.
	orders, err := st.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "order@example.com")
	soup := seedMenuItem(t, st, "Soup", 10)

	_, err := st.CreateOrder(user.ID, []OrderLine{{MenuItemID: soup.ID, Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCreateReviewUpdatesRunningAverage(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "review@example.com")
	item := &models.MenuItem{Name: "Cake", Price: 7, Review: 4.0, UserCount: 3}
	require.NoError(t, st.CreateMenuItem(item))

	err := st.CreateReview(&models.Review{Rating: 5, Comment: "great", UserID: user.ID, MenuItemID: item.ID})
	require.NoError(t, err)

	got, err := st.GetMenuItem(item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, got.Review, 1e-9)
	assert.Equal(t, 4, got.UserCount)
}

func TestCreateReviewUnknownMenuItem(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "review@example.com")
	err := st.CreateReview(&models.Review{Rating: 5, UserID: user.ID, MenuItemID: 999})
	assert.ErrorIs(t, err, ErrNotFound)

	reviews, err := st.ListReviews()
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

// Concurrent reviews for the same menu item must end up with the same count
// and mean as applying them one after another. The aggregate update runs as
// a single statement in the database, so no submission can be lost.
func TestConcurrentReviewsStayConsistent(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "review@example.com")
	item := seedMenuItem(t, st, "Cake", 7)

	const n = 25
	ratings := make([]int, n)
	for i := range ratings {
		ratings[i] = i%5 + 1
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, r := range ratings {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			errs <- st.CreateReview(&models.Review{Rating: rating, UserID: user.ID, MenuItemID: item.ID})
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}

	got, err := st.GetMenuItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.UserCount)
	assert.InDelta(t, float64(sum)/float64(n), got.Review, 1e-6)
}

func TestListReviewsByMenuItemAttachesUser(t *testing.T) {
	st := newTestStore(t)

	user := seedUser(t, st, "review@example.com")
	cake := seedMenuItem(t, st, "Cake", 7)
	soup := seedMenuItem(t, st, "Soup", 10)

	require.NoError(t, st.CreateReview(&models.Review{Rating: 4, UserID: user.ID, MenuItemID: cake.ID}))
	require.NoError(t, st.CreateReview(&models.Review{Rating: 2, UserID: user.ID, MenuItemID: soup.ID}))

	reviews, err := st.ListReviewsByMenuItem(cake.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, user.Email, reviews[0].User.Email)
}
