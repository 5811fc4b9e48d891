package memory

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneJSON(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return json.RawMessage(bytes.Clone(raw))
}

func cloneUser(u domain.User) domain.User {
	u.Phone = clonePtr(u.Phone)
	u.Address = clonePtr(u.Address)
	u.City = clonePtr(u.City)
	u.Postcode = clonePtr(u.Postcode)
	return u
}

func cloneBusiness(b domain.Business) domain.Business {
	b.CompanyNumber = clonePtr(b.CompanyNumber)
	b.UTR = clonePtr(b.UTR)
	b.VATNumber = clonePtr(b.VATNumber)
	b.VATScheme = clonePtr(b.VATScheme)
	b.Industry = clonePtr(b.Industry)
	b.Address = clonePtr(b.Address)
	b.City = clonePtr(b.City)
	b.Postcode = clonePtr(b.Postcode)
	return b
}

func cloneDocument(d domain.Document) domain.Document {
	d.DocumentType = clonePtr(d.DocumentType)
	d.OCRData = cloneJSON(d.OCRData)
	d.ExtractedAmount = clonePtr(d.ExtractedAmount)
	d.ExtractedDate = clonePtr(d.ExtractedDate)
	d.ExtractedVendor = clonePtr(d.ExtractedVendor)
	d.Category = clonePtr(d.Category)
	d.VATAmount = clonePtr(d.VATAmount)
	d.NetAmount = clonePtr(d.NetAmount)
	return d
}

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.DocumentID = clonePtr(t.DocumentID)
	t.VATAmount = clonePtr(t.VATAmount)
	t.NetAmount = clonePtr(t.NetAmount)
	t.Vendor = clonePtr(t.Vendor)
	t.Reference = clonePtr(t.Reference)
	return t
}

func cloneInvoice(i domain.Invoice) domain.Invoice {
	i.ClientEmail = clonePtr(i.ClientEmail)
	i.ClientAddress = clonePtr(i.ClientAddress)
	i.VATAmount = clonePtr(i.VATAmount)
	i.NetAmount = clonePtr(i.NetAmount)
	i.VATRate = clonePtr(i.VATRate)
	i.Items = cloneJSON(i.Items)
	return i
}

func cloneVatReturn(v domain.VatReturn) domain.VatReturn {
	v.VATReclaimed = clonePtr(v.VATReclaimed)
	v.NetVATDue = clonePtr(v.NetVATDue)
	v.TotalSales = clonePtr(v.TotalSales)
	v.TotalPurchases = clonePtr(v.TotalPurchases)
	v.SubmittedAt = clonePtr(v.SubmittedAt)
	v.ApprovedBy = clonePtr(v.ApprovedBy)
	v.ApprovedAt = clonePtr(v.ApprovedAt)
	return v
}

func cloneActivityLog(a domain.ActivityLog) domain.ActivityLog {
	a.BusinessID = clonePtr(a.BusinessID)
	a.Metadata = cloneJSON(a.Metadata)
	return a
}

func cloneValue[T any](v T) T { return v }
