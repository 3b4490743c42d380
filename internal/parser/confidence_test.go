package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("scoreConfidence", func() {
	score := func(raw string) int {
		text, lines := normalize(raw, nil)
		return scoreConfidence(text, lines)
	}

	It("scores every signal on a rich transcript", func() {
		Expect(score("TARGET GIFT CARD\n4111 1111 1111 1111\n$45.00\n12/25")).To(Equal(100))
	})

	It("scores only the first-line signal on plain text", func() {
		Expect(score("HELLO WORLD")).To(Equal(15))
	})

	It("scores nothing on a too-short line", func() {
		Expect(score("AB")).To(BeZero())
	})

	It("counts a gift card keyword", func() {
		Expect(score("XY\nREDEEM")).To(Equal(20))
	})

	It("counts a card-length digit run", func() {
		Expect(score("ZW\n4111 1111 1111 1111")).To(Equal(30))
	})

	It("counts a dollar amount", func() {
		Expect(score("QM\n$45.00")).To(Equal(20))
	})

	It("counts a date token", func() {
		Expect(score("QM\n12/25")).To(Equal(15))
	})
})

var _ = Describe("normalize", func() {
	It("uppercases and splits on line breaks", func() {
		text, lines := normalize("Target\n gift card \n\n$45", nil)
		Expect(text).To(Equal("TARGET\n GIFT CARD \n\n$45"))
		Expect(lines).To(Equal([]string{"TARGET", "GIFT CARD", "$45"}))
	})

	It("prefers provided line boundaries", func() {
		_, lines := normalize("ignored layout", []string{" Target ", "", "Gift Card"})
		Expect(lines).To(Equal([]string{"TARGET", "GIFT CARD"}))
	})

	It("returns nothing for blank input", func() {
		text, lines := normalize(" \n ", nil)
		Expect(text).To(BeEmpty())
		Expect(lines).To(BeNil())
	})
})
