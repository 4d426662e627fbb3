package dto

// PayOrderRequest is the payload for POST /pay-order
type PayOrderRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// OrderInfo describes the gateway order handed back to the client for the
// checkout widget
type OrderInfo struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PayOrderResponse is the outcome of a successful order creation
type PayOrderResponse struct {
	Success bool      `json:"success"`
	Order   OrderInfo `json:"order"`
}

// VerifyPaymentRequest is the payload for POST /verify-payment. Field names
// follow the gateway's checkout callback convention.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// MessageResponse is a plain success envelope
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
