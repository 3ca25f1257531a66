// Package export serializes investment rows into a tabular xlsx
// workbook. Callers own transport concerns (headers, filename).
package export

import (
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the investment history sheet
const SheetName = "투자내역"

// columnNames are the header cells, in column order
var columnNames = []string{
	"투자일",
	"상품호수",
	"상품명",
	"등급",
	"예상수익률(%)",
	"투자기간(개월)",
	"투자금액",
	"지급받은 원금",
	"지급받은 이자",
	"세금",
	"커미션",
}

// InvestmentRow is one exported investment history line
type InvestmentRow struct {
	Date           string
	InvestmentID   uint
	DealName       string
	Grade          string
	EarningRate    float64
	Term           int
	Amount         int64
	PaidPrincipal  int64
	PaidInterest   int64
	PaidTax        int64
	PaidCommission int64
}

// Write builds an xlsx workbook holding the given rows under a header
// row
func Write(rows []InvestmentRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for col, name := range columnNames {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date,
			row.InvestmentID,
			row.DealName,
			row.Grade,
			row.EarningRate,
			row.Term,
			row.Amount,
			row.PaidPrincipal,
			row.PaidInterest,
			row.PaidTax,
			row.PaidCommission,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
