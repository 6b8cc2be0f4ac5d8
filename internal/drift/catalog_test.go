package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/hdrift/internal/domain"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	tr := NewTracker()
	for _, line := range []string{`{"a":1}`, `{"b":1}`, `{"a":2}`, `{"b":2}`, `{"b":3}`, `{}`} {
		c.Add(tr.Observe(mustRecord(t, line)))
	}

	stats := c.Stats()
	require.Len(t, stats, 3)
	assert.Equal(t, 3, c.Len())

	assert.Equal(t, domain.Signature{"a"}, stats[0].Signature)
	assert.Equal(t, 2, stats[0].Count)
	assert.True(t, stats[0].Baseline)

	assert.Equal(t, domain.Signature{"b"}, stats[1].Signature)
	assert.Equal(t, 3, stats[1].Count)
	assert.Equal(t, 1, stats[1].FirstIndex)
	assert.False(t, stats[1].Baseline)

	assert.Equal(t, domain.Signature{}, stats[2].Signature)
	assert.Equal(t, 5, stats[2].FirstIndex)
}

func TestCatalog_KeysDoNotCollide(t *testing.T) {
	c := NewCatalog()
	c.Add(domain.RecordEvent{Signature: domain.Signature{"ab", "c"}})
	c.Add(domain.RecordEvent{Signature: domain.Signature{"a", "bc"}})
	c.Add(domain.RecordEvent{Signature: domain.Signature{"abc"}})
	assert.Equal(t, 3, c.Len())
}
