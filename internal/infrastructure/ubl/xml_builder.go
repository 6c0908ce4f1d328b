// Package ubl construye el artefacto XML de factura electrónica de venta
// siguiendo la estructura UBL 2.1 (Invoice) con los componentes básicos
// cac/cbc. El documento lleva un CUFE calculado por SHA-384 sobre la
// cadena de concatenación del documento.
package ubl

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// Namespaces oficiales UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// XMLBuilder genera el documento Invoice UBL 2.1 de una factura de venta.
type XMLBuilder struct{}

// NewXMLBuilder crea el builder.
func NewXMLBuilder() *XMLBuilder {
	return &XMLBuilder{}
}

// Build genera los bytes del documento Invoice. products mapea ProductID a
// producto para resolver nombre y precio de cada línea.
func (b *XMLBuilder) Build(
	invoice *entity.SaleInvoice,
	items []*entity.SaleInvoiceItem,
	client *entity.Client,
	company *entity.Company,
	products map[string]*entity.Product,
) ([]byte, error) {
	if invoice == nil || client == nil || company == nil {
		return nil, fmt.Errorf("ubl: faltan invoice, client o company")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", invoice.ID)
	cbc(root, "UUID", b.cufe(invoice, client, company))
	cbc(root, "IssueDate", invoice.Date.Format("2006-01-02"))
	cbc(root, "IssueTime", invoice.Date.Format("15:04:05-07:00"))
	cbc(root, "DocumentCurrencyCode", "COP")
	cbc(root, "LineCountNumeric", strconv.Itoa(len(items)))

	b.writeSupplierParty(root, company)
	b.writeCustomerParty(root, client)
	b.writeTaxTotal(root, items, products)
	b.writeMonetaryTotal(root, invoice)

	for i, it := range items {
		b.writeInvoiceLine(root, i+1, it, products[it.ProductID])
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// cufe calcula el identificador único del documento: SHA-384 sobre la
// concatenación de número, fecha, total, NIT del emisor e identificación
// del adquiriente.
func (b *XMLBuilder) cufe(invoice *entity.SaleInvoice, client *entity.Client, company *entity.Company) string {
	cadena := invoice.ID +
		invoice.Date.Format("2006-01-02") +
		invoice.TotalPrice.Round(2).StringFixed(2) +
		company.NIT +
		client.Identification
	hash := sha512.Sum384([]byte(cadena))
	return hex.EncodeToString(hash[:])
}

func (b *XMLBuilder) writeSupplierParty(root *etree.Element, company *entity.Company) {
	party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(company.Name)

	legal := party.CreateElement("cac:PartyLegalEntity")
	legal.CreateElement("cbc:RegistrationName").SetText(company.Name)
	legal.CreateElement("cbc:CompanyID").SetText(company.NIT)

	if company.Address != "" {
		addr := party.CreateElement("cac:PhysicalLocation").CreateElement("cac:Address")
		addr.CreateElement("cac:AddressLine").CreateElement("cbc:Line").SetText(company.Address)
	}
}

func (b *XMLBuilder) writeCustomerParty(root *etree.Element, client *entity.Client) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(client.FullName())

	legal := party.CreateElement("cac:PartyLegalEntity")
	legal.CreateElement("cbc:RegistrationName").SetText(client.FullName())
	legal.CreateElement("cbc:CompanyID").SetText(client.Identification)

	if client.Email != "" {
		party.CreateElement("cac:Contact").CreateElement("cbc:ElectronicMail").SetText(client.Email)
	}
}

func (b *XMLBuilder) writeTaxTotal(root *etree.Element, items []*entity.SaleInvoiceItem, products map[string]*entity.Product) {
	taxTotal := decimal.Zero
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		base := p.SalePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		taxTotal = taxTotal.Add(base.Mul(p.Tax).Div(decimal.NewFromInt(100)))
	}
	el := root.CreateElement("cac:TaxTotal")
	amount := el.CreateElement("cbc:TaxAmount")
	amount.CreateAttr("currencyID", "COP")
	amount.SetText(taxTotal.Round(2).StringFixed(2))
}

func (b *XMLBuilder) writeMonetaryTotal(root *etree.Element, invoice *entity.SaleInvoice) {
	total := root.CreateElement("cac:LegalMonetaryTotal")
	payable := total.CreateElement("cbc:PayableAmount")
	payable.CreateAttr("currencyID", "COP")
	payable.SetText(invoice.TotalPrice.Round(2).StringFixed(2))
}

func (b *XMLBuilder) writeInvoiceLine(root *etree.Element, n int, item *entity.SaleInvoiceItem, product *entity.Product) {
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", strconv.Itoa(n))

	qty := line.CreateElement("cbc:InvoicedQuantity")
	qty.CreateAttr("unitCode", "EA")
	qty.SetText(strconv.Itoa(item.Quantity))

	name := item.ProductID
	unitPrice := decimal.Zero
	if product != nil {
		name = product.Name
		unitPrice = product.SalePrice
	}
	ext := line.CreateElement("cbc:LineExtensionAmount")
	ext.CreateAttr("currencyID", "COP")
	ext.SetText(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2).StringFixed(2))

	line.CreateElement("cac:Item").CreateElement("cbc:Description").SetText(name)

	price := line.CreateElement("cac:Price").CreateElement("cbc:PriceAmount")
	price.CreateAttr("currencyID", "COP")
	price.SetText(unitPrice.Round(2).StringFixed(2))
}

func cbc(parent *etree.Element, local, value string) {
	parent.CreateElement("cbc:" + local).SetText(value)
}
