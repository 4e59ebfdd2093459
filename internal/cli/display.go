package cli

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brendan.keane/qutil/pkg/query"
)

var (
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61AFEF"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98C379"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ABB2BF")).
			Italic(true)
)

// renderParams formats decoded parameters as one styled key/value line
// per pair, keys sorted.
func renderParams(p query.Params) string {
	if len(p) == 0 {
		return emptyStyle.Render("(no parameters)")
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(keyStyle.Render(k))
		b.WriteString(" = ")
		b.WriteString(valueStyle.Render(p[k]))
	}
	return b.String()
}
