package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
)

// UnknownItemName is the sentinel used when OCR noise leaves no usable name.
const UnknownItemName = "Unknown Item"

// Summary/header lines are never items.
var skipLineKeywords = []string{"total", "subtotal", "balance", "due", "amount", "tax", "discount"}

// Keywords that reject an already-extracted item by name.
var skipNameKeywords = []string{"total", "subtotal", "tax"}

const currency = `(?:Rs\.?|INR|[$€£₹])?`
const numeric = `(\d+(?:[.,]\d+)*)`

// Extraction patterns, tried in order. The first match wins.
var (
	// Pattern 1: simple "name amount" line, nothing else.
	itemPattern1 = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\-&.,]+?)\s+` + currency + `\s*` + numeric + `\s*$`)

	// Pattern 2: "name <qty> x <rate> = <amount>".
	itemPattern2 = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\-&.,]+?)\s+(\d+)\s*[xX]\s*` + currency + `\s*` + numeric + `\s*=\s*` + currency + `\s*` + numeric)

	// Pattern 3: tabular "name <rate> <qty> <amount>". Column semantics are
	// unreliable in OCR tables; the rightmost number is pinned as the amount.
	itemPattern3 = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\-&.,]+?)\s+` + currency + `\s*` + numeric + `\s+` + currency + `\s*` + numeric + `\s+` + currency + `\s*` + numeric + `\s*$`)
)

var pageTypeKeywords = map[string][]string{
	dto.PageTypePharmacy:  {"pharmacy", "medical", "drug"},
	dto.PageTypeFinalBill: {"final bill", "summary", "amount due"},
}

// DetectPageType labels a page of text from keyword presence. Pages that look
// neither like a pharmacy page nor a final bill default to "Bill Detail".
func DetectPageType(text string) string {
	textLower := strings.ToLower(text)

	for _, word := range pageTypeKeywords[dto.PageTypePharmacy] {
		if strings.Contains(textLower, word) {
			return dto.PageTypePharmacy
		}
	}
	for _, word := range pageTypeKeywords[dto.PageTypeFinalBill] {
		if strings.Contains(textLower, word) {
			return dto.PageTypeFinalBill
		}
	}
	return dto.PageTypeBillDetail
}

// ExtractLineItems scans page text line by line and extracts every line that
// encodes a bill item. Lines that match no pattern are skipped silently.
func ExtractLineItems(text string) []dto.BillItem {
	items := []dto.BillItem{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		if isSummaryLine(line) {
			continue
		}

		item, ok := parseLine(line)
		if !ok {
			continue
		}
		if isValidItem(item) {
			items = append(items, item)
		}
	}

	return items
}

func isSummaryLine(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range skipLineKeywords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// parseLine tries the extraction patterns in order and returns the first hit.
func parseLine(line string) (dto.BillItem, bool) {
	if m := itemPattern1.FindStringSubmatch(line); m != nil {
		amount := ParseAmount(m[2])
		return dto.BillItem{
			ItemName:     CleanItemName(m[1]),
			ItemAmount:   amount,
			ItemRate:     amount,
			ItemQuantity: 1.0,
		}, true
	}

	if m := itemPattern2.FindStringSubmatch(line); m != nil {
		quantity, _ := strconv.ParseFloat(m[2], 64)
		return dto.BillItem{
			ItemName:     CleanItemName(m[1]),
			ItemQuantity: quantity,
			ItemRate:     ParseAmount(m[3]),
			ItemAmount:   ParseAmount(m[4]),
		}, true
	}

	if m := itemPattern3.FindStringSubmatch(line); m != nil {
		rate := ParseAmount(m[2])
		quantity := ParseAmount(m[3])
		amount := ParseAmount(m[4])
		if !isPlausibleQuantity(quantity) {
			quantity = 1.0
		}
		return dto.BillItem{
			ItemName:     CleanItemName(m[1]),
			ItemQuantity: quantity,
			ItemRate:     rate,
			ItemAmount:   amount,
		}, true
	}

	return dto.BillItem{}, false
}

// isPlausibleQuantity reports whether the middle column of a tabular line
// looks like a quantity rather than a price.
func isPlausibleQuantity(v float64) bool {
	return v > 0 && v < 1000 && v == float64(int64(v))
}

// isValidItem filters out OCR noise: zero or absurd amounts, unusable names,
// and summary rows that slipped past the line filter.
func isValidItem(item dto.BillItem) bool {
	if item.ItemAmount <= 0 || item.ItemAmount >= 100000 {
		return false
	}
	if len(item.ItemName) <= 2 {
		return false
	}
	nameLower := strings.ToLower(item.ItemName)
	for _, word := range skipNameKeywords {
		if strings.Contains(nameLower, word) {
			return false
		}
	}
	return true
}

// CleanItemName normalizes a raw item name: collapses whitespace, strips
// leading non-letters and trailing punctuation, and title-cases each word.
// Names that clean away to nothing become the UnknownItemName sentinel.
func CleanItemName(name string) string {
	name = strings.Join(strings.Fields(name), " ")

	// Strip leading non-letters.
	start := 0
	for start < len(name) {
		c := name[start]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			break
		}
		start++
	}
	name = name[start:]

	// Strip trailing punctuation runs.
	end := len(name)
	for end > 0 {
		c := name[end-1]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			break
		}
		end--
	}
	name = name[:end]

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	name = strings.Join(words, " ")

	if len(name) <= 1 {
		return UnknownItemName
	}
	return name
}

// ParseBillText runs page classification and line-item extraction over every
// page and assembles the pagewise result. Duplicate detections within a page
// are collapsed on an exact name+amount key; the fuzzy cross-page pass happens
// later in Deduplicate. Zero pages yields a valid empty document.
func ParseBillText(pages []dto.PageText) *dto.BillData {
	pagewise := []dto.PageLineItems{}
	totalItems := 0

	for _, page := range pages {
		items := ExtractLineItems(page.Text)

		seen := make(map[string]bool)
		unique := []dto.BillItem{}
		for _, item := range items {
			key := fmt.Sprintf("%s|%.2f", strings.ToLower(item.ItemName), item.ItemAmount)
			if seen[key] {
				continue
			}
			seen[key] = true
			unique = append(unique, item)
		}

		pagewise = append(pagewise, dto.PageLineItems{
			PageNo:    strconv.Itoa(page.PageNo),
			PageType:  DetectPageType(page.Text),
			BillItems: unique,
		})
		totalItems += len(unique)
	}

	return &dto.BillData{
		PagewiseLineItems: pagewise,
		TotalItemCount:    totalItems,
	}
}
