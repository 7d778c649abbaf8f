package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
)

func TestExtractLineItemsSimple(t *testing.T) {
	items := ExtractLineItems("Consultation $200")

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Consultation", items[0].ItemName)
	assert.Equal(t, 200.0, items[0].ItemAmount)
	assert.Equal(t, 200.0, items[0].ItemRate)
	assert.Equal(t, 1.0, items[0].ItemQuantity)
}

func TestExtractLineItemsWithQuantity(t *testing.T) {
	items := ExtractLineItems("Medicine 2 x $50.00 = $100.00")

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Medicine", items[0].ItemName)
	assert.Equal(t, 2.0, items[0].ItemQuantity)
	assert.Equal(t, 50.0, items[0].ItemRate)
	assert.Equal(t, 100.0, items[0].ItemAmount)
}

func TestExtractLineItemsTabular(t *testing.T) {
	items := ExtractLineItems("Paracetamol 25.50 2 51.00")

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Paracetamol", items[0].ItemName)
	assert.Equal(t, 25.50, items[0].ItemRate)
	assert.Equal(t, 2.0, items[0].ItemQuantity)
	assert.Equal(t, 51.0, items[0].ItemAmount)
}

func TestExtractLineItemsTabularImplausibleQuantity(t *testing.T) {
	// The middle column does not look like a quantity, so it defaults to 1
	items := ExtractLineItems("Room Rent 1500.00 1200.50 1500.00")

	assert.Equal(t, 1, len(items))
	assert.Equal(t, 1.0, items[0].ItemQuantity)
	assert.Equal(t, 1500.0, items[0].ItemAmount)
}

func TestExtractLineItemsSkipsSummaryLines(t *testing.T) {
	text := "Consultation $200\nTotal $350\nSubtotal $300\nBalance Due $50\nService Tax $20\nDiscount $10"
	items := ExtractLineItems(text)

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Consultation", items[0].ItemName)
}

func TestExtractLineItemsSkipsShortAndNoiseLines(t *testing.T) {
	text := "ab\n--\nsome garbage without numbers\nX Ray $120"
	items := ExtractLineItems(text)

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "X Ray", items[0].ItemName)
}

func TestExtractLineItemsRejectsAbsurdAmounts(t *testing.T) {
	items := ExtractLineItems("Consultation $250000")
	assert.Empty(t, items)

	items = ExtractLineItems("Consultation $0")
	assert.Empty(t, items)
}

func TestCleanItemName(t *testing.T) {
	assert.Equal(t, "Blood Test", CleanItemName("  blood   TEST  "))
	assert.Equal(t, "Consultation", CleanItemName("- consultation,"))
	assert.Equal(t, "X-ray Charges", CleanItemName("x-ray charges..."))
	assert.Equal(t, UnknownItemName, CleanItemName("--"))
	assert.Equal(t, UnknownItemName, CleanItemName("a"))
}

func TestDetectPageType(t *testing.T) {
	assert.Equal(t, dto.PageTypePharmacy, DetectPageType("Pharmacy Invoice\nParacetamol 20.00"))
	assert.Equal(t, dto.PageTypePharmacy, DetectPageType("Drug charges listed below"))
	assert.Equal(t, dto.PageTypeFinalBill, DetectPageType("FINAL BILL\nSummary of charges"))
	assert.Equal(t, dto.PageTypeBillDetail, DetectPageType("Consultation 200\nMedicine 150"))
	assert.Equal(t, dto.PageTypeBillDetail, DetectPageType(""))
}

func TestParseBillText(t *testing.T) {
	pages := []dto.PageText{
		{PageNo: 1, Text: "Consultation $200\nMedicine $150\nTotal $350"},
	}

	data := ParseBillText(pages)

	assert.Equal(t, 1, len(data.PagewiseLineItems))
	assert.Equal(t, "1", data.PagewiseLineItems[0].PageNo)
	assert.Equal(t, dto.PageTypeBillDetail, data.PagewiseLineItems[0].PageType)
	assert.Equal(t, 2, len(data.PagewiseLineItems[0].BillItems))
	assert.Equal(t, 2, data.TotalItemCount)
}

func TestParseBillTextCollapsesExactDuplicatesWithinPage(t *testing.T) {
	pages := []dto.PageText{
		{PageNo: 1, Text: "Consultation $200\nConsultation $200\nMedicine $150"},
	}

	data := ParseBillText(pages)

	assert.Equal(t, 2, len(data.PagewiseLineItems[0].BillItems))
	assert.Equal(t, 2, data.TotalItemCount)
}

func TestParseBillTextEmptyInput(t *testing.T) {
	data := ParseBillText(nil)

	assert.Empty(t, data.PagewiseLineItems)
	assert.Equal(t, 0, data.TotalItemCount)

	data = ParseBillText([]dto.PageText{{PageNo: 1, Text: ""}})
	assert.Equal(t, 1, len(data.PagewiseLineItems))
	assert.Empty(t, data.PagewiseLineItems[0].BillItems)
	assert.Equal(t, 0, data.TotalItemCount)
}
