package blindpay

import (
	"context"
	"fmt"
	"net/url"
)

const (
	availableRailsPath       = "/available/rails"
	availableBankDetailsPath = "/available/bank-details"
	availableSwiftPath       = "/available/swift/%s"
)

// BankDetail describes one field a rail requires when creating a bank
// account, including the regex the API will enforce.
type BankDetail struct {
	Label    string           `json:"label"`
	Regex    string           `json:"regex"`
	Key      string           `json:"key"`
	Items    []BankDetailItem `json:"items,omitempty"`
	Required bool             `json:"required"`
}

// BankDetailItem is one choice of an enumerated bank detail field.
type BankDetailItem struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// RailInfo is a payout rail and the country it serves.
type RailInfo struct {
	Label   string `json:"label"`
	Value   Rail   `json:"value"`
	Country string `json:"country"`
}

// SwiftCodeBankDetail identifies a bank branch by SWIFT code. This
// endpoint uses camelCase wire names, unlike the rest of the API.
type SwiftCodeBankDetail struct {
	ID            string `json:"id"`
	Bank          string `json:"bank"`
	City          string `json:"city"`
	Branch        string `json:"branch"`
	SwiftCode     string `json:"swiftCode"`
	SwiftCodeLink string `json:"swiftCodeLink"`
	Country       string `json:"country"`
	CountrySlug   string `json:"countrySlug"`
}

// AvailableService answers discovery queries about supported rails and
// their bank detail requirements. These endpoints are instance
// independent.
type AvailableService struct {
	client *Client
}

// GetRails returns every payout rail the API supports.
func (s *AvailableService) GetRails(ctx context.Context) ([]RailInfo, error) {
	rails, err := get[[]RailInfo](ctx, s.client, availableRailsPath)
	if err != nil {
		return nil, err
	}
	return *rails, nil
}

// GetBankDetails returns the bank account fields a rail requires.
func (s *AvailableService) GetBankDetails(ctx context.Context, rail Rail) ([]BankDetail, error) {
	if err := rail.Validate(); err != nil {
		return nil, fmt.Errorf("validating rail: %w", err)
	}

	query := url.Values{}
	query.Set("rail", string(rail))
	details, err := getWithQuery[[]BankDetail](ctx, s.client, availableBankDetailsPath, query)
	if err != nil {
		return nil, err
	}
	return *details, nil
}

// GetSwiftCodeBankDetails looks up bank branches by SWIFT code.
func (s *AvailableService) GetSwiftCodeBankDetails(ctx context.Context, swiftCode string) ([]SwiftCodeBankDetail, error) {
	if err := validateSwiftCode(swiftCode); err != nil {
		return nil, fmt.Errorf("validating swift code: %w", err)
	}

	path := fmt.Sprintf(availableSwiftPath, swiftCode)
	details, err := get[[]SwiftCodeBankDetail](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *details, nil
}
