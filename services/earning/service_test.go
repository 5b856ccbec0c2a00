package earning

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"earnhub/pkg/cache"
	"earnhub/pkg/provider"
	"earnhub/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T, migrate bool) (*Service, *gorm.DB) {
	t.Helper()

	var db *gorm.DB
	if migrate {
		db = testutil.NewTestDB(t, &Record{})
	} else {
		db = testutil.NewTestDB(t)
	}

	c := cache.New(cache.DefaultTTL)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParams{DB: db, Cache: c, Node: node}), db
}

func seed(t *testing.T, db *gorm.DB, id, userID, platform, date string, amount float64) {
	t.Helper()
	require.NoError(t, db.Create(&Record{
		ID:         id,
		UserID:     userID,
		Platform:   platform,
		Task:       "Task",
		Amount:     amount,
		Date:       date,
		SourceType: "survey",
	}).Error)
}

func TestService_List(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)
	seed(t, db, "e2", "u1", "Swagbucks", "2026-03-12", 20)
	seed(t, db, "e3", "u2", "Upwork", "2026-03-12", 30)

	page, source, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceLive, source)
	require.Len(t, page.Records, 2)
	// Newest first.
	require.Equal(t, "e2", page.Records[0].ID)
	require.False(t, page.PageInfo.HasMore)
}

func TestService_ListFilters(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)
	seed(t, db, "e2", "u1", "Swagbucks", "2026-03-12", 20)
	seed(t, db, "e3", "u1", "Upwork", "2026-03-01", 5)

	page, _, err := svc.List(context.Background(), "u1", Filters{Platform: "Upwork", Limit: 20}, false)
	require.NoError(t, err)
	require.Len(t, page.Records, 2)

	page, _, err = svc.List(context.Background(), "u1", Filters{
		From:  "2026-03-05",
		To:    "2026-03-11",
		Limit: 20,
	}, false)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	require.Equal(t, "e1", page.Records[0].ID)
}

func TestService_ListPagination(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 1)
	seed(t, db, "e2", "u1", "Upwork", "2026-03-11", 2)
	seed(t, db, "e3", "u1", "Upwork", "2026-03-12", 3)

	first, _, err := svc.List(context.Background(), "u1", Filters{Limit: 2}, false)
	require.NoError(t, err)
	require.Len(t, first.Records, 2)
	require.True(t, first.PageInfo.HasMore)
	require.NotEmpty(t, first.PageInfo.NextCursor)

	second, _, err := svc.List(context.Background(), "u1", Filters{
		Limit:  2,
		Cursor: first.PageInfo.NextCursor,
	}, false)
	require.NoError(t, err)
	require.Len(t, second.Records, 1)
	require.Equal(t, "e1", second.Records[0].ID)
	require.False(t, second.PageInfo.HasMore)
}

func TestService_ListCachedUntilInvalidated(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)

	first, _, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Len(t, first.Records, 1)

	seed(t, db, "e2", "u1", "Upwork", "2026-03-11", 20)

	cached, _, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Len(t, cached.Records, 1)

	refreshed, _, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, true)
	require.NoError(t, err)
	require.Len(t, refreshed.Records, 2)
}

func TestService_ListFallback(t *testing.T) {
	svc, _ := newTestService(t, false)

	page, source, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceFallback, source)
	require.Len(t, page.Records, fallbackCount)
	for _, r := range page.Records {
		require.Equal(t, "u1", r.UserID)
		require.GreaterOrEqual(t, r.Amount, 5.0)
		require.True(t, ValidSourceType(r.SourceType))
	}

	// A later hit on the cached fallback page keeps the fallback label.
	_, source, err = svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceFallback, source)
}

func TestService_InWindow(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)
	seed(t, db, "e2", "u1", "Upwork", "2026-03-01", 20)

	records, err := svc.InWindow(context.Background(), "u1", "2026-03-05")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "e1", records[0].ID)
}

func TestService_InWindowUnavailable(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.InWindow(context.Background(), "u1", "2026-03-05")
	require.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestService_Add(t *testing.T) {
	svc, db := newTestService(t, true)

	record, err := svc.Add(context.Background(), "u1", AddInput{
		Platform:   "Upwork",
		Task:       "Logo design",
		Amount:     45.50,
		Date:       "2026-03-10",
		SourceType: "freelance",
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	var stored Record
	require.NoError(t, db.First(&stored, "id = ?", record.ID).Error)
	require.Equal(t, "u1", stored.UserID)
	require.InDelta(t, 45.50, stored.Amount, 1e-9)
}

func TestService_AddValidation(t *testing.T) {
	svc, _ := newTestService(t, true)

	base := AddInput{
		Platform:   "Upwork",
		Task:       "Task",
		Amount:     10,
		Date:       "2026-03-10",
		SourceType: "freelance",
	}

	t.Run("negative amount", func(t *testing.T) {
		in := base
		in.Amount = -1
		_, err := svc.Add(context.Background(), "u1", in)
		require.Error(t, err)
	})

	t.Run("bad date format", func(t *testing.T) {
		in := base
		in.Date = "10/03/2026"
		_, err := svc.Add(context.Background(), "u1", in)
		require.Error(t, err)
	})

	t.Run("future date", func(t *testing.T) {
		in := base
		in.Date = time.Now().UTC().AddDate(0, 0, 2).Format(DateLayout)
		_, err := svc.Add(context.Background(), "u1", in)
		require.Error(t, err)
	})

	t.Run("unknown source type", func(t *testing.T) {
		in := base
		in.SourceType = "lottery"
		_, err := svc.Add(context.Background(), "u1", in)
		require.Error(t, err)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		in := base
		in.Amount = 0
		_, err := svc.Add(context.Background(), "u1", in)
		require.NoError(t, err)
	})
}

func TestService_AddInvalidatesCache(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)

	page, _, err := svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)

	_, err = svc.Add(context.Background(), "u1", AddInput{
		Platform:   "Upwork",
		Task:       "Task",
		Amount:     5,
		Date:       "2026-03-11",
		SourceType: "gig",
	})
	require.NoError(t, err)

	page, _, err = svc.List(context.Background(), "u1", Filters{Limit: 20}, false)
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
}

func TestService_Delete(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)

	require.NoError(t, svc.Delete(context.Background(), "u1", "e1"))

	var n int64
	require.NoError(t, db.Model(&Record{}).Count(&n).Error)
	require.Zero(t, n)

	require.Error(t, svc.Delete(context.Background(), "u1", "e1"))
}

func TestService_DeleteScopedToOwner(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "e1", "u1", "Upwork", "2026-03-10", 10)

	require.Error(t, svc.Delete(context.Background(), "u2", "e1"))

	var n int64
	require.NoError(t, db.Model(&Record{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}

func TestService_Insert(t *testing.T) {
	svc, db := newTestService(t, true)

	records := svc.SyntheticForPlatform("u1", "Swagbucks", 5)
	require.NoError(t, svc.Insert(context.Background(), records))

	var n int64
	require.NoError(t, db.Model(&Record{}).Where("platform = ?", "Swagbucks").Count(&n).Error)
	require.Equal(t, int64(5), n)

	for _, r := range records {
		// Batch inserts replace the generator IDs with real ones.
		require.NotContains(t, r.ID, "e")
	}
}
