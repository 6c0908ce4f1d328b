package treasury_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

const (
	tenantA = "empresa-a"
	tenantB = "empresa-b"
)

var (
	scopeAdmin  = access.Scope{Role: entity.RoleAdmin, TenantID: tenantA}
	scopeEditor = access.Scope{Role: entity.RoleEditor, TenantID: tenantA}
)

func seedState() *memState {
	s := newMemState()
	s.companies[tenantA] = &entity.Company{ID: tenantA, Name: "Empresa A", NIT: "900123456-1", CurrentBalance: decimal.NewFromInt(1000)}
	s.companies[tenantB] = &entity.Company{ID: tenantB, Name: "Empresa B", NIT: "900654321-2"}
	s.suppliers["prov-1"] = &entity.Supplier{ID: "prov-1", TenantID: tenantA, Name: "Distribuidora Norte"}
	s.clients["cli-1"] = &entity.Client{ID: "cli-1", TenantID: tenantA, FirstName: "Laura", LastName: "Mejía", Identification: "1020304050"}
	return s
}

func balanceA(s *memState) decimal.Decimal { return s.companies[tenantA].CurrentBalance }

// ──────────────────────────────────────────────────────────────────────────────
// Depósitos
// ──────────────────────────────────────────────────────────────────────────────

func newDepositUC(s *memState) *treasury.DepositUseCase {
	return treasury.NewDepositUseCase(&memTxRunner{s}, &memDepositRepo{s}, &memSupplierRepo{s}, &memCompanyRepo{s})
}

func TestDepositoCicloDeSaldo(t *testing.T) {
	s := seedState()
	uc := newDepositUC(s)
	ctx := context.Background()

	// Crear suma el monto
	dep, err := uc.Create(ctx, scopeAdmin, dto.CreateDepositRequest{
		SupplierID: "prov-1", Amount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1300)))

	// Actualizar de A=300 a B=120 ajusta por (B - A) = -180
	_, err = uc.Update(ctx, scopeAdmin, dep.ID, dto.UpdateDepositRequest{Amount: decimal.NewFromInt(120)})
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1120)), "1300 - 180 = 1120")

	// Eliminar resta el monto vigente
	require.NoError(t, uc.Delete(ctx, scopeAdmin, dep.ID))
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)), "vuelta al saldo original")
}

func TestDepositoValidaciones(t *testing.T) {
	s := seedState()
	uc := newDepositUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, scopeAdmin, dto.CreateDepositRequest{SupplierID: "prov-1", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, scopeAdmin, dto.CreateDepositRequest{SupplierID: "prov-zzz", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El proveedor de otra empresa no sirve
	scopeB := access.Scope{Role: entity.RoleAdmin, TenantID: tenantB}
	_, err = uc.Create(ctx, scopeB, dto.CreateDepositRequest{SupplierID: "prov-1", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Préstamos
// ──────────────────────────────────────────────────────────────────────────────

func newLoanUC(s *memState) *treasury.LoanUseCase {
	return treasury.NewLoanUseCase(&memTxRunner{s}, &memLoanRepo{s}, &memClientRepo{s}, &memCompanyRepo{s}, nopReceipts{})
}

// Escenario: saldo 1000 → préstamo 200 pendiente → 800 → devuelto →
// 1000 → eliminar → 1000 (sin doble efecto, ya estaba devuelto).
func TestPrestamoEscenarioCompleto(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	ctx := context.Background()

	loan, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{
		ClientID: "cli-1", Amount: decimal.NewFromInt(200), Description: "préstamo de caja",
	})
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(800)), "el dinero sale de la caja")
	assert.Equal(t, "Laura Mejía", loan.ClientName, "snapshot del cliente")

	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan.ID, true)
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)), "devuelto: el dinero vuelve")

	require.NoError(t, uc.Delete(ctx, scopeAdmin, loan.ID))
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)), "eliminar uno devuelto no afecta")
}

func TestPrestamoEstadosRepetidosYFlips(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	ctx := context.Background()

	loan, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{
		ClientID: "cli-1", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.True(t, balanceA(s).Equal(decimal.NewFromInt(900)))

	// Mismo estado: sin efecto
	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan.ID, false)
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(900)))

	// Flip a devuelto y de vuelta a pendiente
	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan.ID, true)
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)))

	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan.ID, false)
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(900)))

	// Eliminar pendiente devuelve el monto
	require.NoError(t, uc.Delete(ctx, scopeAdmin, loan.ID))
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)))
}

func TestPrestamoCreadoDevueltoNoAfectaCaja(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)

	_, err := uc.Create(context.Background(), scopeAdmin, dto.CreateLoanRequest{
		ClientID: "cli-1", Amount: decimal.NewFromInt(500), Status: true,
	})
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)))
}

func TestPrestamoStats(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{ClientID: "cli-1", Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)
	loan2, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{ClientID: "cli-1", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan2.ID, true)
	require.NoError(t, err)

	stats, err := uc.Stats(scopeAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPending)
	assert.True(t, stats.TotalAmountPending.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 1, stats.TotalReturned)
	assert.True(t, stats.TotalAmountReturned.Equal(decimal.NewFromInt(300)))

	pendiente := false
	list, err := uc.List(scopeAdmin, "", &pendiente)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestPrestamoReporteGlobal(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{ClientID: "cli-1", Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)
	loan2, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{ClientID: "cli-1", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, scopeAdmin, loan2.ID, true)
	require.NoError(t, err)

	report, err := uc.Report(scopeAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Len(t, report.Loans, 2)
	assert.True(t, report.Summary.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Summary.PendingAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.Summary.ReturnedAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 1, report.Summary.PendingCount)
	assert.Equal(t, 1, report.Summary.ReturnedCount)
	assert.False(t, report.GeneratedAt.IsZero())

	// El admin consulta su propia empresa: el reporte incluye el saldo
	// vigente (1000 - 200 prestados + 300 devueltos-descontados = 800).
	require.NotNil(t, report.Company)
	assert.Equal(t, "Empresa A", report.Company.Name)
	assert.True(t, report.Company.CurrentBalance.Equal(decimal.NewFromInt(800)),
		"saldo tras el ciclo de préstamos, got %s", report.Company.CurrentBalance)
}

func TestPrestamoReporteSuperAdminGlobal(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	ctx := context.Background()

	_, err := uc.Create(ctx, scopeAdmin, dto.CreateLoanRequest{ClientID: "cli-1", Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	// Sin tenant el SUPERADMIN ve todos los préstamos y no hay empresa.
	super := access.Scope{Role: entity.RoleSuperAdmin}
	report, err := uc.Report(super, "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Nil(t, report.Company)

	// Pidiendo una empresa concreta el saldo sí viaja en el reporte.
	report, err = uc.Report(super, tenantA)
	require.NoError(t, err)
	require.NotNil(t, report.Company)
	assert.True(t, report.Company.CurrentBalance.Equal(decimal.NewFromInt(900)))
}

func TestPrestamoReciboPDF(t *testing.T) {
	s := seedState()
	uc := newLoanUC(s)
	loan, err := uc.Create(context.Background(), scopeAdmin, dto.CreateLoanRequest{
		ClientID: "cli-1", Amount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	pdf, filename, err := uc.ReceiptPDF(scopeAdmin, loan.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, loan.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestPagoNoTocaElSaldo(t *testing.T) {
	s := seedState()
	s.invoices["fac-1"] = &entity.SaleInvoice{ID: "fac-1", TenantID: tenantA, ClientID: "cli-1", TotalPrice: decimal.NewFromInt(400)}
	uc := treasury.NewPaymentUseCase(&memPaymentRepo{s}, &memInvoiceRepo{s})

	payment, err := uc.Create(scopeAdmin, dto.CreatePaymentRequest{
		InvoiceID: "fac-1", Amount: decimal.NewFromInt(400), PaymentMethod: "efectivo",
	})
	require.NoError(t, err)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)), "el saldo se movió al facturar, no al cobrar")

	require.NoError(t, uc.Delete(scopeAdmin, payment.ID))
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)))
}

func TestPagoFacturaDeOtraEmpresa(t *testing.T) {
	s := seedState()
	s.invoices["fac-1"] = &entity.SaleInvoice{ID: "fac-1", TenantID: tenantA}
	uc := treasury.NewPaymentUseCase(&memPaymentRepo{s}, &memInvoiceRepo{s})

	scopeB := access.Scope{Role: entity.RoleAdmin, TenantID: tenantB}
	_, err := uc.Create(scopeB, dto.CreatePaymentRequest{InvoiceID: "fac-1", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset de saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestResetDeSaldo(t *testing.T) {
	s := seedState()
	uc := treasury.NewBalanceResetUseCase(&memTxRunner{s}, &memCompanyRepo{s})
	ctx := context.Background()

	resp, err := uc.Reset(ctx, scopeAdmin, tenantA, "user-1", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, resp.PreviousBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.NewBalance.IsZero())
	assert.False(t, resp.AlreadyZero)
	assert.True(t, balanceA(s).IsZero())

	// Auditoría: una transacción de saldo y un log con el valor anterior
	require.Len(t, s.balanceTx, 1)
	assert.Equal(t, entity.TxTypeBalanceReset, s.balanceTx[0].Type)
	assert.True(t, s.balanceTx[0].PreviousBalance.Equal(decimal.NewFromInt(1000)))
	require.Len(t, s.auditLogs, 1)
	assert.Equal(t, entity.AuditActionResetBalance, s.auditLogs[0].Action)

	// Segundo reset consecutivo: idempotente, reporta "ya en cero"
	resp, err = uc.Reset(ctx, scopeAdmin, tenantA, "user-1", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, resp.AlreadyZero)
	assert.Len(t, s.balanceTx, 1, "sin nueva transacción de auditoría")
}

func TestResetRequiereAdmin(t *testing.T) {
	s := seedState()
	uc := treasury.NewBalanceResetUseCase(&memTxRunner{s}, &memCompanyRepo{s})

	_, err := uc.Reset(context.Background(), scopeEditor, tenantA, "user-1", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, balanceA(s).Equal(decimal.NewFromInt(1000)))
}

func TestResetDeOtraEmpresa(t *testing.T) {
	s := seedState()
	uc := treasury.NewBalanceResetUseCase(&memTxRunner{s}, &memCompanyRepo{s})

	scopeBAdmin := access.Scope{Role: entity.RoleAdmin, TenantID: tenantB}
	_, err := uc.Reset(context.Background(), scopeBAdmin, tenantA, "user-1", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Un SUPERADMIN sí puede resetear cualquier empresa
	super := access.Scope{Role: entity.RoleSuperAdmin}
	resp, err := uc.Reset(context.Background(), super, tenantA, "root", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, resp.NewBalance.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Log de auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditoriaListaTrasReset(t *testing.T) {
	s := seedState()
	resetUC := treasury.NewBalanceResetUseCase(&memTxRunner{s}, &memCompanyRepo{s})
	auditUC := treasury.NewAuditUseCase(&memAuditRepo{s})

	_, err := resetUC.Reset(context.Background(), scopeAdmin, tenantA, "user-1", "10.0.0.1")
	require.NoError(t, err)

	out, err := auditUC.ListLogs(scopeAdmin, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, entity.AuditActionResetBalance, out.Items[0].Action)
	assert.Equal(t, "user-1", out.Items[0].UserID)
	assert.Equal(t, "10.0.0.1", out.Items[0].IPAddress)
}

func TestAuditoriaSoloAdministradores(t *testing.T) {
	s := seedState()
	auditUC := treasury.NewAuditUseCase(&memAuditRepo{s})

	_, err := auditUC.ListLogs(scopeEditor, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
