package internal

import (
	"fmt"
	"sort"

	"github.com/mudir-labs/mudir"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const statementSheet = "Statement"

// WriteStatement renders a ledger entry's account statement as an XLSX
// workbook at path. Transactions are listed newest first; the closing
// balance row uses the store's sign convention (positive = the counterparty
// owes the shop).
func WriteStatement(entry mudir.LedgerEntry, currency, orgName, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statementSheet); err != nil {
		return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to prepare workbook").WithCause(err)
	}

	sorted := make([]mudir.Transaction, len(entry.Transactions))
	copy(sorted, entry.Transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	header := [][]any{
		{orgName},
		{fmt.Sprintf("Statement for %s", entry.Organization.Name)},
		{},
		{"Date", "Type", "Remark", "Credit", "Debit"},
	}
	row := 1
	for _, cells := range header {
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to address cell").WithCause(err)
			}
			if err := f.SetCellValue(statementSheet, cell, value); err != nil {
				return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to write header").WithCause(err)
			}
		}
		row++
	}

	for _, txn := range sorted {
		amount := fmt.Sprintf("%s%s", currency, txn.Amount.StringFixed(2))
		cells := []any{txn.Date.Format("2006-01-02"), string(txn.Type), txn.Remark, "", ""}
		if txn.Type == mudir.TransactionCredit {
			cells[3] = amount
		} else {
			cells[4] = amount
		}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to address cell").WithCause(err)
			}
			if err := f.SetCellValue(statementSheet, cell, value); err != nil {
				return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to write transaction row").WithCause(err)
			}
		}
		row++
	}

	row++
	balance := entry.Balance()
	if err := f.SetCellValue(statementSheet, fmt.Sprintf("A%d", row), "Balance"); err != nil {
		return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to write balance row").WithCause(err)
	}
	if err := f.SetCellValue(statementSheet, fmt.Sprintf("B%d", row), mudir.BalanceText(balance, currency)); err != nil {
		return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to write balance row").WithCause(err)
	}

	if err := f.SaveAs(path); err != nil {
		return mudir.NewMudirError(mudir.ErrorTypeInternal, mudir.ErrCodeStatementFailed, "failed to save statement").WithCause(err)
	}

	zap.S().Infow("statement written",
		"organization", entry.Organization.Name,
		"transactions", len(sorted),
		"path", path)
	return nil
}
