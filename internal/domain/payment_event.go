package domain

// Payment-provider event types the webhook acts on.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventInvoicePaymentFail  = "invoice.payment_failed"
)

// PaymentEvent is a verified provider event reduced to what the
// subscription state machine needs. Email is empty when the event carried
// no recoverable email.
type PaymentEvent struct {
	ID    string
	Type  string
	Email string
}
