package export

import (
	"testing"
)

func TestWriteHeader(t *testing.T) {
	f, err := Write(nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != SheetName {
		t.Errorf("sheet name = %q, want %q", f.GetSheetName(0), SheetName)
	}

	first, err := f.GetCellValue(SheetName, "A1")
	if err != nil {
		t.Fatalf("read A1: %v", err)
	}
	if first != "투자일" {
		t.Errorf("A1 = %q, want 투자일", first)
	}

	last, err := f.GetCellValue(SheetName, "K1")
	if err != nil {
		t.Fatalf("read K1: %v", err)
	}
	if last != "커미션" {
		t.Errorf("K1 = %q, want 커미션", last)
	}
}

func TestWriteRows(t *testing.T) {
	rows := []InvestmentRow{
		{
			Date:           "2026-08-01",
			InvestmentID:   7,
			DealName:       "아파트 담보 1호",
			Grade:          "A+",
			EarningRate:    8.5,
			Term:           12,
			Amount:         1_000_000,
			PaidPrincipal:  500_000,
			PaidInterest:   10_000,
			PaidTax:        2_700,
			PaidCommission: 1_000,
		},
		{
			Date:         "2026-08-15",
			InvestmentID: 8,
			DealName:     "개인 신용 3호",
			Grade:        "C",
			EarningRate:  15.0,
			Term:         6,
			Amount:       300_000,
		},
	}

	f, err := Write(rows)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// header plus one line per investment
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}

	if got[1][0] != "2026-08-01" {
		t.Errorf("row 2 date = %q, want 2026-08-01", got[1][0])
	}
	if got[1][2] != "아파트 담보 1호" {
		t.Errorf("row 2 name = %q", got[1][2])
	}
	if got[1][6] != "1000000" {
		t.Errorf("row 2 amount = %q, want 1000000", got[1][6])
	}
	if got[2][3] != "C" {
		t.Errorf("row 3 grade = %q, want C", got[2][3])
	}
}
