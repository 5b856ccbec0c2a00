package opportunity

import (
	"context"
	"testing"

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
		db = testutil.NewTestDB(t, &Opportunity{})
	} else {
		db = testutil.NewTestDB(t)
	}

	return NewService(ServiceParams{DB: db, Cache: cache.New(cache.DefaultTTL)}), db
}

func seed(t *testing.T, db *gorm.DB, id, userID, category string, score float64) {
	t.Helper()
	require.NoError(t, db.Create(&Opportunity{
		ID:              id,
		UserID:          userID,
		Platform:        "Prolific",
		TaskDescription: "Research study",
		EstimatedProfit: 25,
		Category:        category,
		Trend:           "stable",
		RankingScore:    score,
	}).Error)
}

func TestService_ListRankedByScore(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "o1", "u1", "research", 7.5)
	seed(t, db, "o2", "u1", "research", 9.2)
	seed(t, db, "o3", "u1", "testing", 8.1)
	seed(t, db, "o4", "u2", "research", 9.9)

	opportunities, source, err := svc.List(context.Background(), "u1", Filters{}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceLive, source)
	require.Len(t, opportunities, 3)
	require.Equal(t, "o2", opportunities[0].ID)
	require.Equal(t, "o3", opportunities[1].ID)
	require.Equal(t, "o1", opportunities[2].ID)
}

func TestService_ListFiltered(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "o1", "u1", "research", 7.5)
	seed(t, db, "o2", "u1", "testing", 9.2)

	opportunities, _, err := svc.List(context.Background(), "u1", Filters{Category: "testing"}, false)
	require.NoError(t, err)
	require.Len(t, opportunities, 1)
	require.Equal(t, "o2", opportunities[0].ID)
}

func TestService_ListFallback(t *testing.T) {
	svc, _ := newTestService(t, false)

	opportunities, source, err := svc.List(context.Background(), "u1", Filters{}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceFallback, source)
	require.Len(t, opportunities, len(fallbackCatalog))

	for i, opp := range opportunities {
		require.Equal(t, "u1", opp.UserID)
		require.GreaterOrEqual(t, opp.RankingScore, 7.0)
		require.Less(t, opp.RankingScore, 10.0)
		require.NotEmpty(t, opp.URL)
		if i > 0 {
			require.LessOrEqual(t, opp.RankingScore, opportunities[i-1].RankingScore)
		}
	}
}

func TestService_ListFallbackFiltered(t *testing.T) {
	svc, _ := newTestService(t, false)

	opportunities, source, err := svc.List(context.Background(), "u1", Filters{Category: "research"}, false)
	require.NoError(t, err)
	require.Equal(t, provider.SourceFallback, source)
	require.Len(t, opportunities, 2)
	for _, opp := range opportunities {
		require.Equal(t, "research", opp.Category)
	}
}

func TestService_Recommended(t *testing.T) {
	svc, db := newTestService(t, true)

	seed(t, db, "o1", "u1", "research", 7.5)
	seed(t, db, "o2", "u1", "research", 9.2)
	seed(t, db, "o3", "u1", "testing", 8.1)
	seed(t, db, "o4", "u1", "testing", 6.0)

	opportunities, _, err := svc.Recommended(context.Background(), "u1", 3)
	require.NoError(t, err)
	require.Len(t, opportunities, 3)
	require.Equal(t, "o2", opportunities[0].ID)
}
