package domain

// Well-known parcel document keys. Everything else is caller-supplied.
const (
	ParcelKeyCreatedBy     = "created_by"
	ParcelKeyCreatedAt     = "createdAt"
	ParcelKeyPaymentStatus = "payment_status"
)

// ParcelPaid marks a parcel whose payment has been recorded.
const ParcelPaid = "paid"

// Parcel is a schemaless parcel document.
type Parcel map[string]any

// CreatedBy returns the creator's email, or "" when absent.
func (p Parcel) CreatedBy() string {
	s, _ := p[ParcelKeyCreatedBy].(string)
	return s
}

// PaymentStatus returns the free-text payment status, or "" when absent.
func (p Parcel) PaymentStatus() string {
	s, _ := p[ParcelKeyPaymentStatus].(string)
	return s
}

// Paid reports whether the parcel's payment has been recorded.
func (p Parcel) Paid() bool {
	return p.PaymentStatus() == ParcelPaid
}
