package services

import (
	"testing"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"
)

func paid(principal, interest, tax, commission int64) models.UserPayback {
	return models.UserPayback{
		Principal:  principal,
		Interest:   interest,
		Tax:        tax,
		Commission: commission,
		State:      string(domain.PaybackPaid),
	}
}

func unpaid(principal, interest, tax, commission int64) models.UserPayback {
	return models.UserPayback{
		Principal:  principal,
		Interest:   interest,
		Tax:        tax,
		Commission: commission,
		State:      string(domain.PaybackToBePaid),
	}
}

func TestSumPaybacks(t *testing.T) {
	tests := []struct {
		name string
		rows []models.UserPayback
		want PaybackTotals
	}{
		{
			name: "empty",
			rows: nil,
			want: PaybackTotals{},
		},
		{
			name: "mixed states count equally",
			rows: []models.UserPayback{
				paid(10_000, 500, 100, 50),
				unpaid(20_000, 700, 200, 70),
			},
			want: PaybackTotals{Principal: 30_000, Interest: 1200, Tax: 300, Commission: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumPaybacks(tt.rows); got != tt.want {
				t.Errorf("SumPaybacks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSumPaidPaybacks(t *testing.T) {
	rows := []models.UserPayback{
		paid(10_000, 500, 100, 50),
		unpaid(20_000, 700, 200, 70),
		paid(5_000, 300, 60, 30),
	}

	got := SumPaidPaybacks(rows)
	want := PaybackTotals{Principal: 15_000, Interest: 800, Tax: 160, Commission: 80}
	if got != want {
		t.Errorf("SumPaidPaybacks() = %+v, want %+v", got, want)
	}
}

func TestSumUnpaidPaybacks(t *testing.T) {
	rows := []models.UserPayback{
		paid(10_000, 500, 100, 50),
		unpaid(20_000, 700, 200, 70),
		unpaid(30_000, 900, 250, 90),
	}

	got := SumUnpaidPaybacks(rows)
	want := PaybackTotals{Principal: 50_000, Interest: 1600, Tax: 450, Commission: 160}
	if got != want {
		t.Errorf("SumUnpaidPaybacks() = %+v, want %+v", got, want)
	}
}

func TestSumPaidAndUnpaidPartition(t *testing.T) {
	rows := []models.UserPayback{
		paid(10_000, 500, 100, 50),
		unpaid(20_000, 700, 200, 70),
		paid(5_000, 300, 60, 30),
		unpaid(7_000, 100, 20, 10),
	}

	all := SumPaybacks(rows)
	var split PaybackTotals
	split.Add(SumPaidPaybacks(rows))
	split.Add(SumUnpaidPaybacks(rows))

	if all != split {
		t.Errorf("paid + unpaid = %+v, want %+v", split, all)
	}
}

func TestCountPaid(t *testing.T) {
	rows := []models.UserPayback{
		paid(1, 0, 0, 0),
		unpaid(1, 0, 0, 0),
		paid(1, 0, 0, 0),
	}

	if got := CountPaid(rows); got != 2 {
		t.Errorf("CountPaid() = %d, want 2", got)
	}
	if got := CountPaid(nil); got != 0 {
		t.Errorf("CountPaid(nil) = %d, want 0", got)
	}
}
