package api

// REST paths consumed by the client, mirrored from the backend's route table.
// Paths are relative to the configured base URL (which already carries the
// "/api" prefix).
const (
	PathPing      = "/ping"
	PathLogin     = "/auth/login"
	PathLogout    = "/auth/logout"
	PathMe        = "/auth/me"
	PathMaint     = "/maintenance"
	PathInvoices  = "/invoices"
	PathGroceries = "/grocery/items"
	PathOrders    = "/grocery/orders"
	PathUsers     = "/users"
)

func MaintenanceStatusPath(id string) string { return PathMaint + "/" + id + "/status" }
func InvoiceStatusPath(id string) string     { return PathInvoices + "/" + id + "/status" }
func GroceryItemPath(id string) string       { return PathGroceries + "/" + id }
func GroceryStockPath(id string) string      { return PathGroceries + "/" + id + "/stock" }
func OrderStatusPath(id string) string       { return PathOrders + "/" + id + "/status" }
func InvoicePDFPath(id string) string        { return "/pdf/invoice/" + id }
func OrderPDFPath(id string) string          { return "/pdf/order/" + id }
