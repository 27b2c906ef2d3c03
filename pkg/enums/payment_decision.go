package enums

// PaymentDecision represents the outcome an admin can record for a payment proof.
type PaymentDecision string

const (
	// PaymentDecisionApproved marks the out-of-band transfer as verified.
	PaymentDecisionApproved PaymentDecision = "approved"
	// PaymentDecisionRejected marks the proof as insufficient or invalid.
	PaymentDecisionRejected PaymentDecision = "rejected"
)
