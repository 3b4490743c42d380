package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("matchBrand", func() {
	var p *Parser

	BeforeEach(func() {
		p = newTestParser()
	})

	match := func(raw string) string {
		text, lines := normalize(raw, nil)
		return p.matchBrand(text, lines)
	}

	It("matches an alias in the first lines", func() {
		Expect(match("TARGET GIFT CARD\nBALANCE: $45.00")).To(Equal("Target"))
	})

	It("maps secondary aliases to the canonical name", func() {
		Expect(match("AMZN GIFT CARD")).To(Equal("Amazon"))
		Expect(match("ITUNES CARD")).To(Equal("Apple"))
	})

	It("respects dictionary order for overlapping aliases", func() {
		Expect(match("GOOGLE PLAY GIFT CARD")).To(Equal("Google Play"))
	})

	It("falls back to the full text when the header has no alias", func() {
		raw := "CONGRATULATIONS\nA\nB\nC\nD\nREDEEM AT STARBUCKS STORES"
		Expect(match(raw)).To(Equal("Starbucks"))
	})

	It("absorbs OCR misreads via fuzzy matching", func() {
		Expect(match("STARBUCK5\nVALUE $25.00")).To(Equal("Starbucks"))
	})

	It("title-cases an unknown first line as a best guess", func() {
		Expect(match("BROOKSTONE\nGIFT CARD")).To(Equal("Brookstone"))
		Expect(match("SHAKE SHACK\nGIFT CARD")).To(Equal("Shake Shack"))
	})

	It("refuses boilerplate first lines", func() {
		Expect(match("GIFT\n1234")).To(BeEmpty())
	})

	It("refuses overly long first lines", func() {
		Expect(match("THIS CERTIFICATE ENTITLES THE BEARER\nTO NOTHING")).To(BeEmpty())
	})
})
