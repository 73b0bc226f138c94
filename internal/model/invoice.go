// Package model holds the value types shared by the chain reader, the invoice renderer and the verifier.
package model

import "strings"

// InvoiceMetadata is the record embedded as JSON in the invoice subject.
type InvoiceMetadata struct {
	TransactionHash string `json:"transactionHash"`
	Customer        string `json:"customer"`
	Amount          string `json:"amount"`
}

// TransactionRecord is the subset of an on-chain transaction an invoice needs.
// Value is expressed in whole coins (e.g. "0.25"), not in the smallest unit.
type TransactionRecord struct {
	From  string `json:"from"`
	Value string `json:"value"`
}

// InvoiceForm carries the fields a business fills in to generate an invoice.
type InvoiceForm struct {
	BusinessName    string
	TransactionHash string
	InvoiceDate     string
	ProductName     string
	Category        string
	Quantity        string
	Network         NetworkID
}

// Metadata builds the embedded record for a form and its transaction.
func (f InvoiceForm) Metadata(tx TransactionRecord) InvoiceMetadata {
	return InvoiceMetadata{
		TransactionHash: f.TransactionHash,
		Customer:        tx.From,
		Amount:          tx.Value,
	}
}

// VerificationResult reports how an uploaded invoice compares with the chain.
type VerificationResult struct {
	TransactionHash string `json:"transactionHash"`
	Customer        string `json:"customer"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	IsValid         bool   `json:"isValid"`
	AmountMatch     bool   `json:"amountMatch"`
	CustomerMatch   bool   `json:"customerMatch"`
	Details         string `json:"details"`
	Fingerprint     string `json:"fingerprint"`
}

// SameAddress compares two hex addresses ignoring case.
func SameAddress(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
