package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// renderTable imprime filas alineadas por columna con un separador bajo la cabecera.
func renderTable(out io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if l := utf8.RuneCountInString(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	writeRow(out, headers, widths)
	for i, w := range widths {
		if i > 0 {
			fmt.Fprint(out, "  ")
		}
		fmt.Fprint(out, strings.Repeat("-", w))
	}
	fmt.Fprintln(out)
	for _, row := range rows {
		writeRow(out, row, widths)
	}
}

func writeRow(out io.Writer, cols []string, widths []int) {
	for i, w := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		if i == len(widths)-1 {
			fmt.Fprint(out, val)
			break
		}
		fmt.Fprint(out, val)
		if pad := w - utf8.RuneCountInString(val); pad > 0 {
			fmt.Fprint(out, strings.Repeat(" ", pad))
		}
		fmt.Fprint(out, "  ")
	}
	fmt.Fprintln(out)
}
