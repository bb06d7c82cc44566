// Package dataset generates deterministic sample data so the dashboard can be
// tried without real traffic.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	ABTest = "ab_test"
	Sales  = "sales"
)

// Kinds lists the available sample datasets.
func Kinds() []string {
	return []string{ABTest, Sales}
}

// WriteCSV writes the named sample dataset to w. Unknown kinds are an error.
func WriteCSV(w io.Writer, kind string) error {
	switch kind {
	case ABTest:
		return writeABTest(w)
	case Sales:
		return writeSales(w)
	default:
		return fmt.Errorf("unknown sample dataset %q", kind)
	}
}

// 2000 users split evenly; control converts every 20th user, treatment every
// 15th, so the treatment shows a visibly higher rate.
func writeABTest(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"user_id", "group", "converted"}); err != nil {
		return err
	}
	for i := 0; i < 2000; i++ {
		group := "control"
		if i >= 1000 {
			group = "treatment"
		}
		converted := "0"
		if (i < 1000 && i%20 == 0) || (i >= 1000 && i%15 == 0) {
			converted = "1"
		}
		if err := cw.Write([]string{strconv.Itoa(i + 1), group, converted}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSales(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "sales", "visitors"}); err != nil {
		return err
	}
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; !day.After(end); i++ {
		sales := 100 + (i%30)*10 + (i%7)*5
		visitors := 1000 + (i%50)*20
		row := []string{day.Format("2006-01-02"), strconv.Itoa(sales), strconv.Itoa(visitors)}
		if err := cw.Write(row); err != nil {
			return err
		}
		day = day.AddDate(0, 0, 1)
	}
	cw.Flush()
	return cw.Error()
}
