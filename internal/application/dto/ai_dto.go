package dto

// SupplierAnalysisRequest entrada para el análisis de un proveedor.
type SupplierAnalysisRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
}

// SupplierAnalysisDTO veredicto del LLM sobre la confiabilidad de un
// proveedor, basado en su historial de compras.
type SupplierAnalysisDTO struct {
	SupplierID    string `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
	PurchaseCount int    `json:"purchase_count"`
	Analysis      string `json:"analysis"`
}

// SectorTrendsRequest entrada para tendencias del sector de la empresa.
type SectorTrendsRequest struct {
	Sector string `json:"sector"`
}

// SectorTrendsDTO tendencias y consejos generados para el sector.
type SectorTrendsDTO struct {
	Sector string `json:"sector"`
	Trends string `json:"trends"`
}

// ProductAdviceDTO recomendaciones sobre el catálogo e inventario.
type ProductAdviceDTO struct {
	Advice string `json:"advice"`
}
