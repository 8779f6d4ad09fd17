package blindpay

// TrackingStatus is the state of one step in a payment's tracking
// timeline.
type TrackingStatus string

const (
	TrackingStatusProcessing TrackingStatus = "processing"
	TrackingStatusOnHold     TrackingStatus = "on_hold"
	TrackingStatusCompleted  TrackingStatus = "completed"
)

// EstimatedTimeOfArrival is the API's coarse delivery estimate for a
// payment step.
type EstimatedTimeOfArrival string

const (
	ETAFiveMin          EstimatedTimeOfArrival = "5_min"
	ETAThirtyMin        EstimatedTimeOfArrival = "30_min"
	ETATwoHours         EstimatedTimeOfArrival = "2_hours"
	ETAOneBusinessDay   EstimatedTimeOfArrival = "1_business_day"
	ETATwoBusinessDays  EstimatedTimeOfArrival = "2_business_days"
	ETAFiveBusinessDays EstimatedTimeOfArrival = "5_business_days"
)

// PayinTrackingTransaction traces the payer's bank transaction feeding a
// payin.
type PayinTrackingTransaction struct {
	Step                 TrackingStatus `json:"step"`
	Status               string         `json:"status,omitempty"`
	ExternalID           string         `json:"external_id,omitempty"`
	CompletedAt          string         `json:"completed_at,omitempty"`
	SenderName           string         `json:"sender_name,omitempty"`
	SenderTaxID          string         `json:"sender_tax_id,omitempty"`
	SenderBankCode       string         `json:"sender_bank_code,omitempty"`
	SenderAccountNumber  string         `json:"sender_account_number,omitempty"`
	TraceNumber          string         `json:"trace_number,omitempty"`
	TransactionReference string         `json:"transaction_reference,omitempty"`
	Description          string         `json:"description,omitempty"`
}

// PayinTrackingPayment traces the provider leg of a payin.
type PayinTrackingPayment struct {
	Step         TrackingStatus `json:"step"`
	ProviderName string         `json:"provider_name,omitempty"`
	CompletedAt  string         `json:"completed_at,omitempty"`
}

// PayinTrackingComplete traces the on-chain settlement of a payin.
type PayinTrackingComplete struct {
	Step            TrackingStatus `json:"step"`
	TransactionHash string         `json:"transaction_hash,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`
}

// PayinTrackingPartnerFee traces the partner fee transfer of a payin.
type PayinTrackingPartnerFee struct {
	Step            TrackingStatus `json:"step"`
	TransactionHash string         `json:"transaction_hash,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`
}

// PayoutTrackingTransaction traces the on-chain transaction funding a
// payout.
type PayoutTrackingTransaction struct {
	Step            TrackingStatus `json:"step"`
	Status          string         `json:"status"`
	TransactionHash string         `json:"transaction_hash,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`
}

// PayoutTrackingPayment traces the local rail delivery of a payout.
type PayoutTrackingPayment struct {
	Step                   TrackingStatus         `json:"step"`
	ProviderName           string                 `json:"provider_name,omitempty"`
	ProviderTransactionID  string                 `json:"provider_transaction_id,omitempty"`
	ProviderStatus         string                 `json:"provider_status,omitempty"`
	RecipientName          string                 `json:"recipient_name,omitempty"`
	RecipientTaxID         string                 `json:"recipient_tax_id,omitempty"`
	RecipientBankCode      string                 `json:"recipient_bank_code,omitempty"`
	RecipientBranchCode    string                 `json:"recipient_branch_code,omitempty"`
	RecipientAccountNumber string                 `json:"recipient_account_number,omitempty"`
	RecipientAccountType   string                 `json:"recipient_account_type,omitempty"`
	EstimatedTimeOfArrival EstimatedTimeOfArrival `json:"estimated_time_of_arrival,omitempty"`
	CompletedAt            string                 `json:"completed_at,omitempty"`
}

// PayoutTrackingLiquidity traces the liquidity provisioning step of a
// payout.
type PayoutTrackingLiquidity struct {
	Step                   TrackingStatus         `json:"step"`
	ProviderTransactionID  string                 `json:"provider_transaction_id,omitempty"`
	ProviderStatus         string                 `json:"provider_status,omitempty"`
	EstimatedTimeOfArrival EstimatedTimeOfArrival `json:"estimated_time_of_arrival,omitempty"`
	CompletedAt            string                 `json:"completed_at,omitempty"`
}

// PayoutTrackingComplete traces the final settlement of a payout.
type PayoutTrackingComplete struct {
	Step            TrackingStatus `json:"step"`
	Status          string         `json:"status,omitempty"`
	TransactionHash string         `json:"transaction_hash,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`
}

// PayoutTrackingPartnerFee traces the partner fee transfer of a payout.
type PayoutTrackingPartnerFee struct {
	Step            TrackingStatus `json:"step"`
	TransactionHash string         `json:"transaction_hash,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`
}
