package trades

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTransaction(t *testing.T) {
	testCases := []struct {
		value    string
		expected TransactionType
	}{
		{"Buy", TransactionBuy},
		{"Purchase", TransactionBuy},
		{"Acquisition (Full)", TransactionBuy},
		{"Sale (Partial)", TransactionSell},
		{"sell", TransactionSell},
		{"Disposition", TransactionSell},
		{"Exchange", TransactionExchange},
		{"", TransactionUnknown},
		{"Received", TransactionUnknown},
		{"  BUY  ", TransactionBuy},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeTransaction(test.value), "value: %q", test.value)
	}
}

func TestNormalizeOwner(t *testing.T) {
	testCases := []struct {
		value    string
		expected OwnerCategory
	}{
		{"Spouse", OwnerSpouse},
		{"Joint", OwnerJoint},
		{"Dependent Child", OwnerFamily},
		{"Family Trust", OwnerFamily},
		{"Self", OwnerFiler},
		{"Filer", OwnerFiler},
		{"Member", OwnerFiler},
		{"", OwnerUnknown},
		{"Undisclosed", OwnerUnknown},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeOwner(test.value), "value: %q", test.value)
	}
}

// every input must land inside the closed enum sets, classification is
// total and never reports an absent value
func TestNormalizationIsTotal(t *testing.T) {
	inputs := []string{"", " ", "garbage", "🤷", "SALE-ish", "null", "\t\n"}

	validOwners := map[OwnerCategory]bool{
		OwnerFiler: true, OwnerSpouse: true, OwnerFamily: true,
		OwnerJoint: true, OwnerUnknown: true,
	}
	validTransactions := map[TransactionType]bool{
		TransactionBuy: true, TransactionSell: true,
		TransactionExchange: true, TransactionUnknown: true,
	}

	for _, in := range inputs {
		require.True(t, validOwners[NormalizeOwner(in)], "owner input: %q", in)
		require.True(t, validTransactions[NormalizeTransaction(in)], "transaction input: %q", in)
	}
}
