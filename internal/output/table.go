package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/hdrift/internal/domain"
)

// WriteSignatureTable prints one row per distinct signature in first-seen order
func WriteSignatureTable(w io.Writer, stats []domain.SignatureStat, styled bool) error {
	title := fmt.Sprintf("%d distinct header signatures", len(stats))
	if styled {
		title = Styles.Header.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Records", "First Seen", "Baseline", "Keys"})
	for i, s := range stats {
		baseline := ""
		if s.Baseline {
			baseline = "yes"
		}
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Count),
			strconv.Itoa(s.FirstIndex + 1),
			baseline,
			FormatSignature(s.Signature),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
