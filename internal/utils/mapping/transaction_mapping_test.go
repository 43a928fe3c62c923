package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/ftracker/ft_backend/internal/models"
	"github.com/ftracker/ft_backend/internal/utils/mapping"
)

func TestTransactionMapping_RoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	manualFee := decimal.NewFromFloat(12.5)

	income, err := domain.NewIncome("i1", now, "Client", decimal.NewFromInt(100), domain.FeePolicyManual, &manualFee, true)
	require.NoError(t, err)
	expense, err := domain.NewExpense("e1", now, "Food - groceries", decimal.NewFromInt(3000), domain.CurrencyDZD)
	require.NoError(t, err)
	sale, err := domain.NewUsdDzdTransfer("t1", now, decimal.NewFromInt(500), decimal.NewFromInt(200))
	require.NoError(t, err)
	withdrawal, err := domain.NewPaypalBankTransfer("t2", now, decimal.NewFromInt(200), domain.TransferMethodManual)
	require.NoError(t, err)

	for _, txn := range []domain.Transaction{income, expense, sale, withdrawal} {
		model := mapping.ToModelTransaction(txn)
		got, err := mapping.ToDomainTransaction(model)
		require.NoError(t, err, "kind %s", txn.Kind)
		assert.Equal(t, txn.TransactionID, got.TransactionID)
		assert.Equal(t, txn.Kind, got.Kind)
		assert.True(t, txn.Date.Equal(got.Date))
		assert.NoError(t, got.Validate())
	}
}

func TestToDomainTransaction_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name  string
		model models.Transaction
	}{
		{
			name:  "unknown kind",
			model: models.Transaction{TransactionID: "x1", Date: "2024-03-15", Kind: "REFUND"},
		},
		{
			name:  "income without amounts",
			model: models.Transaction{TransactionID: "x2", Date: "2024-03-15", Kind: "INCOME"},
		},
		{
			name:  "unparseable date",
			model: models.Transaction{TransactionID: "x3", Date: "15/03/2024", Kind: "EXPENSE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.ToDomainTransaction(tt.model)
			assert.Error(t, err)
		})
	}
}
