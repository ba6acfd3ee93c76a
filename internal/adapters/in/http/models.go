package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type AddCartItemResponse struct {
	ID string `json:"id"`
}

type CardDetails struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type CreateOrderRequest struct {
	LineItemIDs   []string     `json:"lineItemIds"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *CardDetails `json:"card,omitempty"`
}

type CreateOrderResponse struct {
	OrderID     string `json:"orderId"`
	TotalAmount string `json:"totalAmount"`
}

type TransitionOrderRequest struct {
	Status string `json:"status"`
}

type TransitionOrderResponse struct {
	Status       string  `json:"status"`
	TrackingCode *string `json:"trackingCode,omitempty"`
}

type RequestReturnRequest struct {
	LineItemID string `json:"lineItemId"`
	Reason     string `json:"reason"`
}

type RequestReturnResponse struct {
	ReturnID string `json:"returnId"`
}

type RateProductRequest struct {
	OrderID string `json:"orderId"`
	Value   int    `json:"value"`
}

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

type OrderLineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"ownerId"`
	Status        string          `json:"status"`
	Total         string          `json:"total"`
	Discount      string          `json:"discount"`
	PaymentMethod string          `json:"paymentMethod"`
	TrackingCode  *string         `json:"trackingCode,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LineItems     []OrderLineItem `json:"lineItems"`
}
