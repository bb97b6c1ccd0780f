package filesource

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/wikilog/internal/domain/ports"
)

const bareDump = `[
	{"type": "block", "logid": 1, "timestamp": "2020-01-01T00:00:00Z"},
	{"type": "move", "logid": 2, "timestamp": "2020-01-02T00:00:00Z"},
	{"type": "block", "logid": 3, "timestamp": "2020-01-03T00:00:00Z"}
]`

const envelopeDump = `{
	"batchcomplete": true,
	"query": {
		"logevents": [
			{"type": "patrol", "logid": 9, "timestamp": "2020-02-01T00:00:00Z"}
		]
	}
}`

func TestFromReader_BareArray(t *testing.T) {
	src, err := FromReader(strings.NewReader(bareDump))
	require.NoError(t, err)

	records, err := src.LogEvents(context.Background(), ports.LogQuery{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFromReader_APIEnvelope(t *testing.T) {
	src, err := FromReader(strings.NewReader(envelopeDump))
	require.NoError(t, err)

	records, err := src.LogEvents(context.Background(), ports.LogQuery{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "patrol", records[0].String("type"))
}

func TestLogEvents_KindFilterAndLimit(t *testing.T) {
	src, err := FromReader(strings.NewReader(bareDump))
	require.NoError(t, err)

	records, err := src.LogEvents(context.Background(), ports.LogQuery{Kind: "block", Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	logID, _ := records[0].Int("logid")
	assert.Equal(t, 1, logID)
}

func TestLogEvents_Exhausted(t *testing.T) {
	src, err := FromReader(strings.NewReader(bareDump))
	require.NoError(t, err)

	_, err = src.LogEvents(context.Background(), ports.LogQuery{Kind: "rights"})
	require.ErrorIs(t, err, ports.ErrExhausted)
}

func TestFromReader_InvalidJSON(t *testing.T) {
	_, err := FromReader(strings.NewReader("not json"))
	require.Error(t, err)
}
