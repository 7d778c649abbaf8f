package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
)

func TestSameItem(t *testing.T) {
	a := dto.BillItem{ItemName: "Consultation", ItemAmount: 200.0}
	b := dto.BillItem{ItemName: "consultation ", ItemAmount: 200.005}
	c := dto.BillItem{ItemName: "Consultation", ItemAmount: 210.0}

	assert.True(t, SameItem(a, b))
	assert.False(t, SameItem(a, c))
}

func TestDeduplicateCollapsesAcrossPages(t *testing.T) {
	data := &dto.BillData{
		PagewiseLineItems: []dto.PageLineItems{
			{
				PageNo:   "1",
				PageType: dto.PageTypeBillDetail,
				BillItems: []dto.BillItem{
					{ItemName: "Consultation", ItemAmount: 200.0},
					{ItemName: "Medicine", ItemAmount: 150.0},
				},
			},
			{
				PageNo:   "2",
				PageType: dto.PageTypeBillDetail,
				BillItems: []dto.BillItem{
					{ItemName: "consultation ", ItemAmount: 200.005},
					{ItemName: "Lab Test", ItemAmount: 300.0},
				},
			},
		},
		TotalItemCount: 4,
	}

	data = Deduplicate(data)

	assert.Equal(t, 3, data.TotalItemCount)
	assert.Equal(t, 2, len(data.PagewiseLineItems[0].BillItems))
	// The later page's copy of the consultation is dropped
	assert.Equal(t, 1, len(data.PagewiseLineItems[1].BillItems))
	assert.Equal(t, "Lab Test", data.PagewiseLineItems[1].BillItems[0].ItemName)
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	data := &dto.BillData{
		PagewiseLineItems: []dto.PageLineItems{
			{
				PageNo: "1",
				BillItems: []dto.BillItem{
					{ItemName: "Consultation", ItemAmount: 200.0},
					{ItemName: "Consultation", ItemAmount: 200.0},
					{ItemName: "Medicine", ItemAmount: 150.0},
				},
			},
		},
		TotalItemCount: 3,
	}

	once := Deduplicate(data)
	firstCount := once.TotalItemCount
	firstItems := append([]dto.BillItem{}, once.PagewiseLineItems[0].BillItems...)

	twice := Deduplicate(once)

	assert.Equal(t, firstCount, twice.TotalItemCount)
	assert.Equal(t, firstItems, twice.PagewiseLineItems[0].BillItems)
}

func TestDeduplicateChainedToleranceAmounts(t *testing.T) {
	// 200.004, 200.008 and 200.016 chain through the tolerance: the middle
	// amount is a duplicate of both ends, but the ends are distinct. The
	// surviving items must be the unique representatives, so a second run
	// finds nothing more to collapse.
	data := &dto.BillData{
		PagewiseLineItems: []dto.PageLineItems{
			{
				PageNo: "1",
				BillItems: []dto.BillItem{
					{ItemName: "Consultation", ItemAmount: 200.004},
					{ItemName: "Consultation", ItemAmount: 200.008},
					{ItemName: "Consultation", ItemAmount: 200.016},
				},
			},
		},
		TotalItemCount: 3,
	}

	data = Deduplicate(data)

	assert.Equal(t, 2, data.TotalItemCount)
	items := data.PagewiseLineItems[0].BillItems
	assert.Equal(t, 2, len(items))
	assert.Equal(t, 200.004, items[0].ItemAmount)
	assert.Equal(t, 200.016, items[1].ItemAmount)

	again := Deduplicate(data)
	assert.Equal(t, 2, again.TotalItemCount)
	assert.Equal(t, items, again.PagewiseLineItems[0].BillItems)
}

func TestDeduplicateCountMatchesFlattenedItems(t *testing.T) {
	data := &dto.BillData{
		PagewiseLineItems: []dto.PageLineItems{
			{PageNo: "1", BillItems: []dto.BillItem{
				{ItemName: "Consultation", ItemAmount: 200.0},
				{ItemName: "Medicine", ItemAmount: 150.0},
			}},
			{PageNo: "2", BillItems: []dto.BillItem{
				{ItemName: "Medicine", ItemAmount: 150.0},
				{ItemName: "Injection", ItemAmount: 80.0},
			}},
		},
	}

	data = Deduplicate(data)

	flattened := 0
	for _, page := range data.PagewiseLineItems {
		flattened += len(page.BillItems)
	}
	assert.Equal(t, flattened, data.TotalItemCount)
}

func TestDeduplicateEmptyDocument(t *testing.T) {
	data := Deduplicate(&dto.BillData{})

	assert.Equal(t, 0, data.TotalItemCount)
	assert.Empty(t, data.PagewiseLineItems)
}
