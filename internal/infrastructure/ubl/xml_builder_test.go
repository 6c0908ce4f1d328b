package ubl

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

func buildFixture() (*entity.SaleInvoice, []*entity.SaleInvoiceItem, *entity.Client, *entity.Company, map[string]*entity.Product) {
	invoice := &entity.SaleInvoice{
		ID:         "fac-001",
		TenantID:   "empresa-a",
		ClientID:   "cli-1",
		Date:       time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		TotalPrice: decimal.NewFromInt(250000),
	}
	items := []*entity.SaleInvoiceItem{
		{ID: "item-1", InvoiceID: "fac-001", ProductID: "prod-1", Quantity: 2},
		{ID: "item-2", InvoiceID: "fac-001", ProductID: "prod-2", Quantity: 1},
	}
	client := &entity.Client{
		ID: "cli-1", FirstName: "María", LastName: "Gómez",
		Identification: "1020304050", Email: "maria@example.com",
	}
	company := &entity.Company{
		ID: "empresa-a", NIT: "900123456-7", Name: "Distribuciones Andinas SAS",
		Address: "Calle 10 # 5-20, Bogotá",
	}
	products := map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Monitor 24\"", SalePrice: decimal.NewFromInt(100000), Tax: decimal.NewFromInt(19)},
		"prod-2": {ID: "prod-2", Name: "Teclado", SalePrice: decimal.NewFromInt(50000), Tax: decimal.NewFromInt(19)},
	}
	return invoice, items, client, company, products
}

func TestBuildInvoiceXML(t *testing.T) {
	invoice, items, client, company, products := buildFixture()

	data, err := NewXMLBuilder().Build(invoice, items, client, company, products)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, NsInvoice, root.SelectAttrValue("xmlns", ""))

	assert.Equal(t, "fac-001", root.FindElement("cbc:ID").Text())
	assert.Equal(t, "2026-03-15", root.FindElement("cbc:IssueDate").Text())
	assert.Equal(t, "COP", root.FindElement("cbc:DocumentCurrencyCode").Text())
	assert.Equal(t, "2", root.FindElement("cbc:LineCountNumeric").Text())

	// CUFE determinista y no vacío (SHA-384 hex = 96 caracteres)
	uuid := root.FindElement("cbc:UUID")
	require.NotNil(t, uuid)
	assert.Len(t, uuid.Text(), 96)

	// Emisor y adquiriente
	assert.Equal(t, "Distribuciones Andinas SAS",
		root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyName/cbc:Name").Text())
	assert.Equal(t, "900123456-7",
		root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyLegalEntity/cbc:CompanyID").Text())
	assert.Equal(t, "María Gómez",
		root.FindElement("cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name").Text())

	// Totales: IVA 19% sobre 250.000 de base
	assert.Equal(t, "47500.00", root.FindElement("cac:TaxTotal/cbc:TaxAmount").Text())
	assert.Equal(t, "250000.00", root.FindElement("cac:LegalMonetaryTotal/cbc:PayableAmount").Text())

	// Líneas
	lines := root.FindElements("cac:InvoiceLine")
	require.Len(t, lines, 2)
	assert.Equal(t, "2", lines[0].FindElement("cbc:InvoicedQuantity").Text())
	assert.Equal(t, "Monitor 24\"", lines[0].FindElement("cac:Item/cbc:Description").Text())
	assert.Equal(t, "200000.00", lines[0].FindElement("cbc:LineExtensionAmount").Text())
	assert.Equal(t, "50000.00", lines[1].FindElement("cac:Price/cbc:PriceAmount").Text())
}

func TestBuildInvoiceXMLDeterministicCUFE(t *testing.T) {
	invoice, items, client, company, products := buildFixture()

	first, err := NewXMLBuilder().Build(invoice, items, client, company, products)
	require.NoError(t, err)
	second, err := NewXMLBuilder().Build(invoice, items, client, company, products)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildInvoiceXMLMissingParts(t *testing.T) {
	invoice, items, client, company, products := buildFixture()

	_, err := NewXMLBuilder().Build(nil, items, client, company, products)
	assert.Error(t, err)
	_, err = NewXMLBuilder().Build(invoice, items, nil, company, products)
	assert.Error(t, err)
	_, err = NewXMLBuilder().Build(invoice, items, client, nil, products)
	assert.Error(t, err)
}

func TestBuildInvoiceXMLUnknownProduct(t *testing.T) {
	invoice, items, client, company, _ := buildFixture()

	// Sin catálogo: las líneas usan el ID del producto y precio cero.
	data, err := NewXMLBuilder().Build(invoice, items, client, company, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	lines := doc.Root().FindElements("cac:InvoiceLine")
	require.Len(t, lines, 2)
	assert.Equal(t, "prod-1", lines[0].FindElement("cac:Item/cbc:Description").Text())
	assert.Equal(t, "0.00", lines[0].FindElement("cbc:LineExtensionAmount").Text())
}
