package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_StatusBoundaries(t *testing.T) {
	today := date(2024, 3, 1)
	docs := []Document{
		{Kind: KindCompany, Name: "ALVARÁ", DueDate: date(2024, 2, 29), OwnerName: "ACME"},  // -1
		{Kind: KindCompany, Name: "ALVARÁ", DueDate: date(2024, 3, 1), OwnerName: "ACME"},   // 0
		{Kind: KindCompany, Name: "ALVARÁ", DueDate: date(2024, 3, 31), OwnerName: "ACME"},  // 30
		{Kind: KindCompany, Name: "ALVARÁ", DueDate: date(2024, 4, 1), OwnerName: "ACME"},   // 31
	}

	items := Classify(docs, nil, today)
	require.Len(t, items, 4)
	assert.Equal(t, StatusExpired, items[0].Status)
	assert.Equal(t, -1, items[0].DaysLeft)
	assert.Equal(t, StatusApproaching, items[1].Status)
	assert.Equal(t, StatusApproaching, items[2].Status)
	assert.Equal(t, 30, items[2].DaysLeft)
	assert.Equal(t, StatusOK, items[3].Status)
}

func TestClassify_CategoryThresholdWithDefaultFallback(t *testing.T) {
	today := date(2024, 3, 1)
	thresholds := map[string]int{"CNH": 60}
	docs := []Document{
		{Kind: KindDriver, Name: "CNH", DueDate: date(2024, 4, 15), OwnerName: "JOSE"},    // 45 days, within 60
		{Kind: KindVehicle, Name: "SEGURO", DueDate: date(2024, 4, 15), OwnerName: "ABC1D23"}, // 45 days, default 30
	}

	items := Classify(docs, thresholds, today)
	require.Len(t, items, 2)
	assert.Equal(t, StatusApproaching, items[0].Status)
	assert.Equal(t, StatusOK, items[1].Status)
}

func TestClassify_SortedAscendingStable(t *testing.T) {
	today := date(2024, 3, 1)
	docs := []Document{
		{Kind: KindCompany, Name: "A", DueDate: date(2024, 3, 20), OwnerName: "FIRST"},
		{Kind: KindCompany, Name: "B", DueDate: date(2024, 3, 5), OwnerName: "SECOND"},
		{Kind: KindCompany, Name: "C", DueDate: date(2024, 3, 20), OwnerName: "THIRD"},
		{Kind: KindCompany, Name: "D", DueDate: date(2024, 2, 1), OwnerName: "FOURTH"},
	}

	items := Classify(docs, nil, today)
	require.Len(t, items, 4)
	assert.Equal(t, "D", items[0].Description)
	assert.Equal(t, "B", items[1].Description)
	// Equal days-left keeps input order.
	assert.Equal(t, "A", items[2].Description)
	assert.Equal(t, "C", items[3].Description)
}

func TestClassify_Scenario_CRLVApproaching(t *testing.T) {
	today := date(2024, 3, 1)
	docs := []Document{
		{Kind: KindVehicle, Name: "CRLV", DueDate: date(2024, 3, 15), OwnerName: "ABC1D23", CompanyName: "ACME TRANSPORTES"},
	}

	items := Classify(docs, map[string]int{}, today)
	require.Len(t, items, 1)
	assert.Equal(t, "CRLV", items[0].Category)
	assert.Equal(t, 14, items[0].DaysLeft)
	assert.Equal(t, StatusApproaching, items[0].Status)
	assert.Equal(t, "CRLV - ABC1D23", items[0].Description)
}

func TestClassify_DriverDescription(t *testing.T) {
	items := Classify([]Document{
		{Kind: KindDriver, Name: "CNH", DueDate: date(2024, 5, 1), OwnerName: "JOÃO SILVA"},
	}, nil, date(2024, 3, 1))
	require.Len(t, items, 1)
	assert.Equal(t, "CNH de JOÃO SILVA", items[0].Description)
}
