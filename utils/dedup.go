package utils

import (
	"math"
	"strings"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
)

// amountTolerance guards against floating rounding between OCR re-reads of
// the same line, not against semantically different amounts.
const amountTolerance = 0.01

type uniqueItem struct {
	pageIndex int
	item      dto.BillItem
	claimed   bool
}

// SameItem reports whether two items are duplicates: equal normalized names
// and amounts within cent-level tolerance.
func SameItem(a, b dto.BillItem) bool {
	return normalizeItemName(a.ItemName) == normalizeItemName(b.ItemName) &&
		math.Abs(a.ItemAmount-b.ItemAmount) < amountTolerance
}

func normalizeItemName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Deduplicate collapses items seen more than once across pages into a unique
// set, first occurrence wins. Page lists are rebuilt against the unique set,
// so a later page's copy of an earlier page's item is dropped from the later
// page. TotalItemCount is recomputed from the unique set. Running Deduplicate
// on its own output is a no-op.
func Deduplicate(data *dto.BillData) *dto.BillData {
	var unique []uniqueItem

	for pageIdx, page := range data.PagewiseLineItems {
		for _, item := range page.BillItems {
			duplicate := false
			for _, u := range unique {
				if SameItem(u.item, item) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				unique = append(unique, uniqueItem{pageIndex: pageIdx, item: item})
			}
		}
	}

	for pageIdx := range data.PagewiseLineItems {
		page := &data.PagewiseLineItems[pageIdx]
		kept := []dto.BillItem{}
		for _, item := range page.BillItems {
			for i := range unique {
				u := &unique[i]
				if u.pageIndex == pageIdx && !u.claimed && SameItem(u.item, item) {
					// Keep the unique representative, not the matching entry:
					// the tolerance predicate is non-transitive, so keeping the
					// entry could retain two items that are themselves
					// duplicates of each other.
					kept = append(kept, u.item)
					u.claimed = true
					break
				}
			}
		}
		page.BillItems = kept
	}

	data.TotalItemCount = len(unique)
	return data
}
