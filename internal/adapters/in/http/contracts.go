package http

// Error is the uniform error body returned by every endpoint. Code is a
// stable machine-readable identifier; Message is for humans.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stable error codes surfaced to API clients.
const (
	codeValidation          = "VALIDATION_ERROR"
	codeNotFound            = "NOT_FOUND"
	codeDeliveryDisabled    = "DELIVERY_DISABLED"
	codeOutOfRange          = "OUT_OF_RANGE"
	codeMinimumOrderNotMet  = "MINIMUM_ORDER_NOT_MET"
	codeInvalidTransition   = "INVALID_TRANSITION"
	codeConcurrentConflict  = "CONFLICT"
	codeSessionExpired      = "SESSION_EXPIRED"
	codeInternalServerError = "INTERNAL_ERROR"
)

// NewMerchant is the request body for merchant registration.
type NewMerchant struct {
	Name               string            `json:"name"`
	PostalCode         string            `json:"postalCode"`
	Latitude           *float64          `json:"latitude,omitempty"`
	Longitude          *float64          `json:"longitude,omitempty"`
	DeliveryEnabled    bool              `json:"deliveryEnabled"`
	PickupEnabled      bool              `json:"pickupEnabled"`
	DeliveryRadiusKm   float64           `json:"deliveryRadiusKm"`
	MinimumOrder       float64           `json:"minimumOrder"`
	DeliveryFee        float64           `json:"deliveryFee"`
	PreparationMinutes int               `json:"preparationMinutes"`
	Settings           *DeliverySettings `json:"settings,omitempty"`
}

// DeliverySettings is the wire form of the pricing settings tagged union.
// Model selects the variant; exactly one variant object should be set.
type DeliverySettings struct {
	Model               string            `json:"model"`
	FreeDeliveryMinimum *float64          `json:"freeDeliveryMinimum,omitempty"`
	Flat                *FlatSettings     `json:"flat,omitempty"`
	Distance            *DistanceSettings `json:"distance,omitempty"`
	Zone                *ZoneSettings     `json:"zone,omitempty"`
}

// FlatSettings carries the FLAT pricing variant.
type FlatSettings struct {
	FlatRate             float64  `json:"flatRate"`
	SpecialAreaSurcharge *float64 `json:"specialAreaSurcharge,omitempty"`
}

// DistanceSettings carries the DISTANCE pricing variant.
type DistanceSettings struct {
	BaseRate  float64        `json:"baseRate"`
	PerKmRate float64        `json:"perKmRate"`
	Tiers     []DistanceTier `json:"tiers,omitempty"`
}

// DistanceTier is one distance band with its additional fee.
type DistanceTier struct {
	MinKm         float64 `json:"minKm"`
	MaxKm         float64 `json:"maxKm"`
	AdditionalFee float64 `json:"additionalFee"`
}

// ZoneSettings carries the ZONE pricing variant.
type ZoneSettings struct {
	SameZone     float64 `json:"sameZone"`
	AdjacentZone float64 `json:"adjacentZone"`
	CrossZone    float64 `json:"crossZone"`
	SpecialArea  float64 `json:"specialArea"`
}

// MerchantCreated is returned after a successful registration.
type MerchantCreated struct {
	ID string `json:"id"`
}

// QuoteRequest asks for a delivery quote.
type QuoteRequest struct {
	MerchantID string  `json:"merchantId"`
	PostalCode string  `json:"postalCode"`
	OrderTotal float64 `json:"orderTotal"`
}

// QuoteResponse is the computed delivery quote.
type QuoteResponse struct {
	Fee              float64 `json:"fee"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	DistanceKm       float64 `json:"distanceKm"`
	DistanceResolved bool    `json:"distanceResolved"`
	Zone             string  `json:"zone"`
	Model            string  `json:"model"`
	IsSpecialArea    bool    `json:"isSpecialArea"`
	FreeDelivery     bool    `json:"freeDelivery"`
	Message          string  `json:"message"`
}

// CheckoutItem is one cart line item.
type CheckoutItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// NewCheckoutSession opens a checkout session for a cart.
type NewCheckoutSession struct {
	MerchantID string         `json:"merchantId"`
	PostalCode string         `json:"postalCode"`
	Items      []CheckoutItem `json:"items"`
}

// CheckoutSessionCreated is the opened session with its quote snapshot.
type CheckoutSessionCreated struct {
	SessionID string        `json:"sessionId"`
	Subtotal  float64       `json:"subtotal"`
	Quote     QuoteResponse `json:"quote"`
}

// Order is the API representation of an order.
type Order struct {
	ID          string  `json:"id"`
	MerchantID  string  `json:"merchantId"`
	Destination string  `json:"destination"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Status      string  `json:"status"`
}

// TransitionRequest moves an order to a new status.
type TransitionRequest struct {
	TargetStatus string `json:"targetStatus"`
	Actor        string `json:"actor"`
	Reason       string `json:"reason,omitempty"`
}

// BulkTransitionRequest moves a batch of orders to the same status.
type BulkTransitionRequest struct {
	OrderIDs     []string `json:"orderIds"`
	TargetStatus string   `json:"targetStatus"`
	Actor        string   `json:"actor"`
	Reason       string   `json:"reason,omitempty"`
}

// BulkTransitionResponse tallies the batch outcome.
type BulkTransitionResponse struct {
	SuccessCount int `json:"successCount"`
	FailedCount  int `json:"failedCount"`
	TotalCount   int `json:"totalCount"`
}

// OrderEvent is one recorded status transition.
type OrderEvent struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Actor      string `json:"actor"`
	Reason     string `json:"reason,omitempty"`
	OccurredAt string `json:"occurredAt"`
}
