// Package ui 命令行输出的配色与表格
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Warn   = color.New(color.FgYellow)
	Bad    = color.New(color.FgRed)
)

// Banner 打印命令标题
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s: %s\n\n", Brand.Sprint("neuralfx"), subtitle)
}

// Table 打印列对齐的表格
// 整列都是数字时右对齐，便于比较采样数据
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	numeric := make([]bool, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
		numeric[i] = true
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric[i] = false
			}
		}
	}

	format := func(cells []string) string {
		line := "  "
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if numeric[i] {
				line += fmt.Sprintf("%*s  ", widths[i], cell)
			} else {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		return strings.TrimRight(line, " ")
	}

	sep := make([]string, len(headers))
	for i := range headers {
		sep[i] = strings.Repeat("─", widths[i])
	}
	Subtle.Fprintln(w, format(headers))
	Subtle.Fprintln(w, format(sep))

	for _, row := range rows {
		fmt.Fprintln(w, format(row))
	}
}
