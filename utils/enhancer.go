package utils

import (
	"math"
	"regexp"
	"strings"

	"github.com/Aashish23092/ocr-bill-extraction/dto"
)

// Phrases that introduce a total figure in free text, tried over the whole
// document. Every match becomes a candidate; the largest candidate is taken
// as the reference total, since the final total is almost always the largest
// figure mentioned on a bill.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:grand\s+total|final\s+(?:amount|total)|total)[\s:]*` + currency + `\s*` + numeric),
	regexp.MustCompile(`(?i)amount\s+due[\s:]*` + currency + `\s*` + numeric),
	regexp.MustCompile(`(?i)balance\s+due[\s:]*` + currency + `\s*` + numeric),
}

// Upper sanity bound on a candidate total, to reject OCR digit runs.
const maxCandidateTotal = 1000000

// ValidateTotals compares the sum of extracted item amounts against the best
// total mentioned in the document text. It never fails: when no candidate
// total is found it reports the extracted total with low confidence.
func ValidateTotals(text string, extractedTotal float64) dto.BillValidation {
	var candidates []float64
	for _, pattern := range totalPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			amount := ParseAmount(m[1])
			if amount > 0 && amount < maxCandidateTotal {
				candidates = append(candidates, amount)
			}
		}
	}

	if len(candidates) == 0 {
		return dto.BillValidation{
			ExtractedTotal: extractedTotal,
			Confidence:     "low",
			Note:           "no total amount found in document text",
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c > best {
			best = c
		}
	}

	accuracy := 0.0
	if best > 0 {
		accuracy = 1 - math.Abs(extractedTotal-best)/best
	}

	confidence := "low"
	if accuracy > 0.9 {
		confidence = "high"
	} else if accuracy > 0.7 {
		confidence = "medium"
	}

	score := math.Round(accuracy*100*100) / 100
	return dto.BillValidation{
		ExtractedTotal: extractedTotal,
		ValidatedTotal: &best,
		AccuracyScore:  &score,
		Confidence:     confidence,
	}
}

// SumItemAmounts returns the sum of every item amount across all pages.
func SumItemAmounts(data *dto.BillData) float64 {
	total := 0.0
	for _, page := range data.PagewiseLineItems {
		for _, item := range page.BillItems {
			total += item.ItemAmount
		}
	}
	return total
}

// Category keyword tables, checked in order. The first category with a
// keyword present in the item name wins.
var itemCategories = []struct {
	name     string
	keywords []string
}{
	{dto.CategoryMedical, []string{"consultation", "medicine", "drug", "tablet", "injection", "doctor", "hospital"}},
	{dto.CategoryService, []string{"service", "fee", "charge", "consultation", "visit", "professional"}},
	{dto.CategoryProduct, []string{"product", "item", "material", "goods", "supply"}},
	{dto.CategoryTax, []string{"tax", "gst", "vat", "service tax"}},
}

// CategorizeItems assigns a cosmetic category to every item by keyword
// membership in the item name. Items matching nothing become "other".
func CategorizeItems(data *dto.BillData) {
	for pageIdx := range data.PagewiseLineItems {
		page := &data.PagewiseLineItems[pageIdx]
		for i := range page.BillItems {
			page.BillItems[i].Category = categorize(page.BillItems[i].ItemName)
		}
	}
}

func categorize(name string) string {
	nameLower := strings.ToLower(name)
	for _, cat := range itemCategories {
		for _, keyword := range cat.keywords {
			if strings.Contains(nameLower, keyword) {
				return cat.name
			}
		}
	}
	return dto.CategoryOther
}

// EstimateTokenUsage estimates token consumption for the enhancement pass
// over the combined document text. Returned explicitly so the pipeline stays
// free of mutable instance state.
func EstimateTokenUsage(text string) dto.TokenUsage {
	input := len(text) / 4
	output := 100
	return dto.TokenUsage{
		InputTokens:  input,
		OutputTokens: output,
		TotalTokens:  input + output,
	}
}
