package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractBalance", func() {
	var p *Parser

	BeforeEach(func() {
		p = newTestParser()
	})

	It("extracts a labeled balance", func() {
		Expect(p.extractBalance("BALANCE: $45.00")).To(Equal("45.00"))
	})

	It("pads whole-dollar amounts to two fraction digits", func() {
		Expect(p.extractBalance("VALUE $25")).To(Equal("25.00"))
	})

	It("extracts a dollar amount with a trailing qualifier", func() {
		Expect(p.extractBalance("$ 50.00 REMAINING")).To(Equal("50.00"))
	})

	It("extracts a bare amount followed by a currency word", func() {
		Expect(p.extractBalance("25.99 USD")).To(Equal("25.99"))
	})

	It("prefers the labeled pattern over later ones", func() {
		Expect(p.extractBalance("19.99 DOLLARS WORTH $150.00")).To(Equal("150.00"))
	})

	It("skips amounts below the window", func() {
		Expect(p.extractBalance("BALANCE: $3.00")).To(BeEmpty())
	})

	It("skips amounts above the window", func() {
		Expect(p.extractBalance("BALANCE: $2500.00")).To(BeEmpty())
	})

	It("skips an out-of-window match in favor of a later in-window one", func() {
		Expect(p.extractBalance("VALUE: $2.00 BALANCE: $20.00")).To(Equal("20.00"))
	})

	It("returns empty when no pattern matches", func() {
		Expect(p.extractBalance("NO MONETARY CONTENT HERE")).To(BeEmpty())
	})

	It("honors a configured window", func() {
		p.maxBalance = defaultMinBalance
		Expect(p.extractBalance("BALANCE: $45.00")).To(BeEmpty())
	})
})
