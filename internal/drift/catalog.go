package drift

import (
	"strconv"
	"strings"

	"github.com/vburojevic/hdrift/internal/domain"
)

// Catalog counts distinct signatures in first-seen order
type Catalog struct {
	index map[string]int
	stats []domain.SignatureStat
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add records the signature of ev
func (c *Catalog) Add(ev domain.RecordEvent) {
	k := catalogKey(ev.Signature)
	if i, ok := c.index[k]; ok {
		c.stats[i].Count++
		return
	}
	c.index[k] = len(c.stats)
	c.stats = append(c.stats, domain.SignatureStat{
		Signature:  ev.Signature.Clone(),
		Count:      1,
		FirstIndex: ev.Index,
		Baseline:   len(c.stats) == 0,
	})
}

// Stats returns a copy of the distinct signatures seen so far
func (c *Catalog) Stats() []domain.SignatureStat {
	out := make([]domain.SignatureStat, len(c.stats))
	copy(out, c.stats)
	return out
}

// Len returns the number of distinct signatures
func (c *Catalog) Len() int {
	return len(c.stats)
}

// catalogKey length-prefixes each key so that no two signatures collide.
func catalogKey(sig domain.Signature) string {
	var b strings.Builder
	for _, k := range sig {
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
