package dto

// DashboardKPIs los cuatro indicadores del dashboard, calculados frescos por
// petición (sin caché ni mantenimiento incremental).
type DashboardKPIs struct {
	TotalOrders          int `json:"totalOrders"`
	PendingOrders        int `json:"pendingOrders"`
	StockLevels          int `json:"stockLevels"`
	ProductionEfficiency int `json:"productionEfficiency"` // % redondeado, 0 si no hay órdenes no canceladas
}
