// Package io reads category rows from spreadsheets and writes them back.
//
// # Overview
//
// The chart input is a table in which every record is a category path
// followed by a number. Parent labels are written once and left blank on
// the records below them:
//
//	Food,Bread,3
//	,Fruit,2
//	Rent,,10
//
// This package only turns files into [tree.Row] values; the carry-forward
// rule itself is applied by tree.Build.
//
// # Formats
//
//   - .csv, .txt: comma separated, read with encoding/csv
//   - .tsv, .tab: tab separated
//   - .xlsx, .xlsm: Excel workbooks, read with excelize
//
// Records may have different lengths. A leading header record can be
// skipped with [ReadOptions.Header]. For workbooks, the active sheet is read
// unless [ReadOptions.Sheet] names another one.
//
// # Import
//
// Use [ImportRows] to read a file by path, or [ReadCSV] and [ReadXLSX] to
// read from any io.Reader:
//
//	rows, err := io.ImportRows("budget.xlsx", io.ReadOptions{Header: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, err := tree.Build(rows)
//
// # Export
//
// [WriteCSV] and [ExportCSV] write a tree back in the same carry-forward
// layout, one record per leaf. This normalizes hand-edited sheets: rows come
// out sorted, with every parent label written exactly once.
//
// [tree.Row]: github.com/matzehuels/sunburst/pkg/tree.Row
package io
