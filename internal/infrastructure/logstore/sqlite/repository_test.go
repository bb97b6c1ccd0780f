package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/mocks"
	"github.com/ersonp/wikilog/internal/infrastructure/config"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func testEntry(t *testing.T, raw entities.RawRecord) entities.LogEntry {
	t.Helper()
	entry, err := entities.NewGenericEntry(raw, mocks.NewSite())
	require.NoError(t, err)
	return entry
}

func TestNewRepository_RequiresPath(t *testing.T) {
	_, err := NewRepository(config.SQLiteConfig{})
	require.Error(t, err)
}

func TestSaveBatch_ListByType(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []entities.LogEntry{
		testEntry(t, entities.RawRecord{
			"type": "block", "action": "block", "timestamp": "2020-01-01T00:00:00Z",
			"logid": float64(1), "ns": float64(2), "pageid": float64(0),
			"user": "Admin", "comment": "spam", "title": "User:Spammer",
		}),
		testEntry(t, entities.RawRecord{
			"type": "move", "action": "move", "timestamp": "2020-01-03T00:00:00Z",
			"logid": float64(2), "ns": float64(0), "pageid": float64(5),
			"user": "Mover", "title": "Old",
		}),
		testEntry(t, entities.RawRecord{
			"type": "block", "action": "unblock", "timestamp": "2020-01-02T00:00:00Z",
			"logid": float64(3), "ns": float64(2), "pageid": float64(0),
			"user": "Admin",
		}),
	}
	require.NoError(t, repo.SaveBatch(ctx, "batch-1", entries))

	blocks, err := repo.ListByType(ctx, "block", 0)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	// Newest first
	assert.Equal(t, 3, blocks[0].LogID)
	assert.Equal(t, 1, blocks[1].LogID)
	assert.Equal(t, "batch-1", blocks[0].BatchID)
	assert.Equal(t, entities.Kind("block"), blocks[0].Type)
	assert.Equal(t, "User:Spammer", blocks[1].Title)
	assert.Equal(t, "spam", blocks[1].Comment)

	all, err := repo.ListByType(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := repo.ListByType(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSaveBatch_SkipsDuplicateLogIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entry := testEntry(t, entities.RawRecord{
		"type": "delete", "action": "delete", "timestamp": "2020-01-01T00:00:00Z",
		"logid": float64(42), "user": "Admin",
	})

	require.NoError(t, repo.SaveBatch(ctx, "batch-1", []entities.LogEntry{entry}))
	require.NoError(t, repo.SaveBatch(ctx, "batch-2", []entities.LogEntry{entry}))

	all, err := repo.ListByType(ctx, "delete", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "batch-1", all[0].BatchID, "first write wins")
}

func TestCountByType(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	counts, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	entries := []entities.LogEntry{
		testEntry(t, entities.RawRecord{
			"type": "patrol", "timestamp": "2020-01-01T00:00:00Z", "logid": float64(1),
		}),
		testEntry(t, entities.RawRecord{
			"type": "patrol", "timestamp": "2020-01-02T00:00:00Z", "logid": float64(2),
		}),
		testEntry(t, entities.RawRecord{
			"type": "block", "timestamp": "2020-01-03T00:00:00Z", "logid": float64(3),
		}),
	}
	require.NoError(t, repo.SaveBatch(ctx, "batch-1", entries))

	counts, err = repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.KindCount{
		{Kind: "block", Count: 1},
		{Kind: "patrol", Count: 2},
	}, counts)
}
