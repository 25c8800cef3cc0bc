package domain

// InvoiceStatus is the payment state of an invoice. The client only ever
// transitions pending → paid; everything else is server-side.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
)

// PaymentProof is the client-submitted evidence attached when an invoice is
// marked paid. The server does not always echo it back, so the store merges
// it locally after a successful status update.
type PaymentProof struct {
	Image string `json:"image,omitempty"`
	Notes string `json:"notes,omitempty"`
	Date  string `json:"date,omitempty"`
}

// Invoice is a server-created billing record. The client reads invoices and
// marks them paid; it never creates or deletes them on behalf of residents.
type Invoice struct {
	Record
	InvoiceNumber string        `json:"invoiceNumber,omitempty"`
	RoomNumber    string        `json:"roomNumber,omitempty"`
	UserID        string        `json:"userId,omitempty"`
	Amount        float64       `json:"amount,omitempty"`
	Type          string        `json:"type,omitempty"`
	Status        InvoiceStatus `json:"status,omitempty"`
	DueDate       string        `json:"dueDate,omitempty"`
	Description   string        `json:"description,omitempty"`
	PaidDate      string        `json:"paidDate,omitempty"`
	PaymentProof  *PaymentProof `json:"paymentProof,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}
