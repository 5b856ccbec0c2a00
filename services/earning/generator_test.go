package earning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(42)

	records := g.Generate("u1", 25)
	require.Len(t, records, 25)

	cutoff := time.Now().UTC().AddDate(0, 0, -30).Format(DateLayout)
	today := time.Now().UTC().Format(DateLayout)

	for _, r := range records {
		require.Equal(t, "u1", r.UserID)
		require.NotEmpty(t, r.Platform)
		require.NotEmpty(t, r.Task)
		require.GreaterOrEqual(t, r.Amount, 5.0)
		require.Less(t, r.Amount, 105.01)
		require.True(t, ValidSourceType(r.SourceType))
		require.GreaterOrEqual(t, r.Date, cutoff)
		require.LessOrEqual(t, r.Date, today)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	ga := NewGenerator(7)
	ga.now = func() time.Time { return fixed }
	gb := NewGenerator(7)
	gb.now = func() time.Time { return fixed }

	require.Equal(t, ga.Generate("u1", 10), gb.Generate("u1", 10))
}

func TestGenerator_ForPlatform(t *testing.T) {
	records := NewGenerator(7).GenerateForPlatform("u1", "Upwork", 5)
	require.Len(t, records, 5)
	for _, r := range records {
		require.Equal(t, "Upwork", r.Platform)
	}
}
