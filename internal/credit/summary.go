//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package credit

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// CategoryShare is one line of the score distribution.
type CategoryShare struct {
	Category   string
	Count      int
	Proportion float64
}

// Summarize counts rows per score category. Every category is present, in
// band order, even when empty.
func Summarize(t *Table) []CategoryShare {
	counts := make(map[string]int, len(ScoreBands))
	for i := range t.Profiles {
		counts[t.Profiles[i].ScoreCategory]++
	}

	shares := make([]CategoryShare, 0, len(ScoreBands))
	for _, label := range CategoryLabels() {
		s := CategoryShare{Category: label, Count: counts[label]}
		if t.Len() > 0 {
			s.Proportion = float64(s.Count) / float64(t.Len())
		}
		shares = append(shares, s)
	}
	return shares
}

// previewColumns are the columns shown in the console preview.
var previewColumns = []string{
	"Customer_ID",
	"Name",
	"Age",
	"Income",
	"Credit_Score",
	"Total_Debt",
	"DTI",
	"Payment_History",
	"Housing",
	"Credit_Score_Category",
}

// WriteSummary prints the score distribution followed by the first
// previewRows rows.
func WriteSummary(w io.Writer, t *Table, previewRows int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "\nCredit Score Distribution:")
	fmt.Fprintln(tw, "Credit_Score_Category\tproportion")
	for _, s := range Summarize(t) {
		fmt.Fprintf(tw, "%s\t%.6f\n", s.Category, s.Proportion)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	previewRows = min(previewRows, t.Len())
	if previewRows <= 0 {
		return nil
	}

	pos := make([]int, len(previewColumns))
	for i, name := range previewColumns {
		pos[i] = columnIndex(name)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "\t"+strings.Join(previewColumns, "\t"))
	for i := 0; i < previewRows; i++ {
		values := t.Profiles[i].Values()
		cells := make([]string, len(pos))
		for j, p := range pos {
			cells[j] = values[p]
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func columnIndex(name string) int {
	for i, c := range Columns {
		if c == name {
			return i
		}
	}
	panic("credit: unknown column " + name)
}
