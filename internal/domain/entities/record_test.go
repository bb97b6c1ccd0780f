package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawRecord_Int(t *testing.T) {
	tests := []struct {
		name     string
		record   RawRecord
		expected int
		ok       bool
	}{
		{
			name:     "json number",
			record:   RawRecord{"logid": float64(7)},
			expected: 7,
			ok:       true,
		},
		{
			name:     "native int",
			record:   RawRecord{"logid": 42},
			expected: 42,
			ok:       true,
		},
		{
			name:     "numeric string",
			record:   RawRecord{"logid": "19"},
			expected: 19,
			ok:       true,
		},
		{
			name:   "non-numeric string",
			record: RawRecord{"logid": "seven"},
			ok:     false,
		},
		{
			name:   "absent",
			record: RawRecord{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.record.Int("logid")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, n)
			}
		})
	}
}

func TestRawRecord_Bool(t *testing.T) {
	tests := []struct {
		name     string
		record   RawRecord
		expected bool
	}{
		{name: "true bool", record: RawRecord{"auto": true}, expected: true},
		{name: "false bool", record: RawRecord{"auto": false}, expected: false},
		{name: "one", record: RawRecord{"auto": float64(1)}, expected: true},
		{name: "zero", record: RawRecord{"auto": float64(0)}, expected: false},
		{name: "bare presence marker", record: RawRecord{"auto": ""}, expected: true},
		{name: "absent", record: RawRecord{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Bool("auto"))
		})
	}
}

func TestRawRecord_StringSlice(t *testing.T) {
	tests := []struct {
		name     string
		record   RawRecord
		expected []string
	}{
		{
			name:     "list value",
			record:   RawRecord{"flags": []any{"nocreate", "noemail"}},
			expected: []string{"nocreate", "noemail"},
		},
		{
			name:     "comma-joined string",
			record:   RawRecord{"flags": "nocreate,noemail"},
			expected: []string{"nocreate", "noemail"},
		},
		{
			name:     "empty tokens dropped",
			record:   RawRecord{"flags": []any{"nocreate", "", "noemail"}},
			expected: []string{"nocreate", "noemail"},
		},
		{
			name:     "empty string yields nothing",
			record:   RawRecord{"flags": ""},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.StringSlice("flags"))
		})
	}
}

func TestRawRecord_Map(t *testing.T) {
	r := RawRecord{"params": map[string]any{"curid": float64(5)}}
	params := r.Map("params")
	id, ok := params.Int("curid")
	assert.True(t, ok)
	assert.Equal(t, 5, id)

	assert.Nil(t, r.Map("missing"))
	assert.Nil(t, RawRecord{"params": "scalar"}.Map("params"))
}
