package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractPIN", func() {
	It("extracts a labeled PIN", func() {
		Expect(extractPIN("PIN: 4821")).To(Equal("4821"))
	})

	It("tolerates hash marks after the label", func() {
		Expect(extractPIN("PIN #12345678")).To(Equal("12345678"))
	})

	It("extracts an access code", func() {
		Expect(extractPIN("ACCESS CODE: 9876")).To(Equal("9876"))
	})

	It("extracts a security code", func() {
		Expect(extractPIN("SECURITY CODE 55443")).To(Equal("55443"))
	})

	It("extracts a 3-digit CVV", func() {
		Expect(extractPIN("CVV: 123")).To(Equal("123"))
	})

	It("prefers the PIN label over a CVV", func() {
		Expect(extractPIN("CVV: 123 PIN: 4821")).To(Equal("4821"))
	})

	It("ignores digits without a label", func() {
		Expect(extractPIN("1234 5678")).To(BeEmpty())
	})

	It("ignores too-short codes", func() {
		Expect(extractPIN("PIN: 12")).To(BeEmpty())
	})
})
