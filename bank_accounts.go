package blindpay

import (
	"context"
	"fmt"
)

const (
	bankAccountsPath = "/instances/%s/receivers/%s/bank-accounts"
	bankAccountPath  = "/instances/%s/receivers/%s/bank-accounts/%s"
)

// SpeiProtocol is the identifier kind used on the SPEI rail.
type SpeiProtocol string

const (
	SpeiProtocolClabe     SpeiProtocol = "clabe"
	SpeiProtocolDebitcard SpeiProtocol = "debitcard"
	SpeiProtocolPhonenum  SpeiProtocol = "phonenum"
)

func (p SpeiProtocol) Validate() error {
	switch p {
	case SpeiProtocolClabe, SpeiProtocolDebitcard, SpeiProtocolPhonenum:
		return nil
	}
	return fmt.Errorf("invalid spei protocol %q", p)
}

// BankAccount is a receiver's registered destination on a payment rail.
// Most fields are rail-specific and unset for other rails.
type BankAccount struct {
	ID          string `json:"id"`
	AccountType Rail   `json:"type"`
	Name        string `json:"name"`

	// PIX.
	PixKey string `json:"pix_key,omitempty"`

	// Shared by the US rails.
	BeneficiaryName     string          `json:"beneficiary_name,omitempty"`
	RoutingNumber       string          `json:"routing_number,omitempty"`
	AccountNumber       string          `json:"account_number,omitempty"`
	AccountTypeDetail   BankAccountType `json:"account_type_detail,omitempty"`
	AccountClass        AccountClass    `json:"account_class,omitempty"`
	AddressLine1        string          `json:"address_line_1,omitempty"`
	AddressLine2        string          `json:"address_line_2,omitempty"`
	City                string          `json:"city,omitempty"`
	StateProvinceRegion string          `json:"state_province_region,omitempty"`
	Country             Country         `json:"country,omitempty"`
	PostalCode          string          `json:"postal_code,omitempty"`

	// SPEI.
	SpeiProtocol        string `json:"spei_protocol,omitempty"`
	SpeiInstitutionCode string `json:"spei_institution_code,omitempty"`
	SpeiClabe           string `json:"spei_clabe,omitempty"`

	// Argentina transfers.
	TransfersType    ArgentinaTransfers `json:"transfers_type,omitempty"`
	TransfersAccount string             `json:"transfers_account,omitempty"`

	// ACH Colombia.
	AchCopBeneficiaryFirstName string         `json:"ach_cop_beneficiary_first_name,omitempty"`
	AchCopBeneficiaryLastName  string         `json:"ach_cop_beneficiary_last_name,omitempty"`
	AchCopDocumentID           string         `json:"ach_cop_document_id,omitempty"`
	AchCopDocumentType         AchCopDocument `json:"ach_cop_document_type,omitempty"`
	AchCopEmail                string         `json:"ach_cop_email,omitempty"`
	AchCopBankCode             string         `json:"ach_cop_bank_code,omitempty"`
	AchCopBankAccount          string         `json:"ach_cop_bank_account,omitempty"`

	// International SWIFT.
	SwiftCodeBic                           string  `json:"swift_code_bic,omitempty"`
	SwiftAccountHolderName                 string  `json:"swift_account_holder_name,omitempty"`
	SwiftAccountNumberIban                 string  `json:"swift_account_number_iban,omitempty"`
	SwiftBeneficiaryAddressLine1           string  `json:"swift_beneficiary_address_line_1,omitempty"`
	SwiftBeneficiaryAddressLine2           string  `json:"swift_beneficiary_address_line_2,omitempty"`
	SwiftBeneficiaryCountry                Country `json:"swift_beneficiary_country,omitempty"`
	SwiftBeneficiaryCity                   string  `json:"swift_beneficiary_city,omitempty"`
	SwiftBeneficiaryStateProvinceRegion    string  `json:"swift_beneficiary_state_province_region,omitempty"`
	SwiftBeneficiaryPostalCode             string  `json:"swift_beneficiary_postal_code,omitempty"`
	SwiftBankName                          string  `json:"swift_bank_name,omitempty"`
	SwiftBankAddressLine1                  string  `json:"swift_bank_address_line_1,omitempty"`
	SwiftBankAddressLine2                  string  `json:"swift_bank_address_line_2,omitempty"`
	SwiftBankCountry                       Country `json:"swift_bank_country,omitempty"`
	SwiftBankCity                          string  `json:"swift_bank_city,omitempty"`
	SwiftBankStateProvinceRegion           string  `json:"swift_bank_state_province_region,omitempty"`
	SwiftBankPostalCode                    string  `json:"swift_bank_postal_code,omitempty"`
	SwiftIntermediaryBankSwiftCodeBic      string  `json:"swift_intermediary_bank_swift_code_bic,omitempty"`
	SwiftIntermediaryBankAccountNumberIban string  `json:"swift_intermediary_bank_account_number_iban,omitempty"`
	SwiftIntermediaryBankName              string  `json:"swift_intermediary_bank_name,omitempty"`
	SwiftIntermediaryBankCountry           Country `json:"swift_intermediary_bank_country,omitempty"`

	CreatedAt string `json:"created_at"`
}

// ListBankAccountsResponse wraps a receiver's bank accounts.
type ListBankAccountsResponse struct {
	Data []BankAccount `json:"data"`
}

// CreatePixInput registers a PIX key as a payout destination.
type CreatePixInput struct {
	ReceiverID string `json:"receiver_id"`
	Name       string `json:"name"`
	PixKey     string `json:"pix_key"`
}

func (i CreatePixInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.PixKey == "" {
		return fmt.Errorf("pix_key is required")
	}
	return nil
}

type CreatePixResponse struct {
	ID          string `json:"id"`
	AccountType string `json:"type"`
	Name        string `json:"name"`
	PixKey      string `json:"pix_key"`
	CreatedAt   string `json:"created_at"`
}

// CreateArgentinaTransfersInput registers a CVU, CBU, or alias
// destination on the Argentine transfers rail.
type CreateArgentinaTransfersInput struct {
	ReceiverID       string             `json:"receiver_id"`
	Name             string             `json:"name"`
	BeneficiaryName  string             `json:"beneficiary_name"`
	TransfersAccount string             `json:"transfers_account"`
	TransfersType    ArgentinaTransfers `json:"transfers_type"`
}

func (i CreateArgentinaTransfersInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.BeneficiaryName == "" {
		return fmt.Errorf("beneficiary_name is required")
	}
	if i.TransfersAccount == "" {
		return fmt.Errorf("transfers_account is required")
	}
	return i.TransfersType.Validate()
}

type CreateArgentinaTransfersResponse struct {
	ID               string             `json:"id"`
	AccountType      string             `json:"type"`
	Name             string             `json:"name"`
	BeneficiaryName  string             `json:"beneficiary_name"`
	TransfersType    ArgentinaTransfers `json:"transfers_type"`
	TransfersAccount string             `json:"transfers_account"`
	CreatedAt        string             `json:"created_at"`
}

// CreateSpeiInput registers a SPEI destination in Mexico.
type CreateSpeiInput struct {
	ReceiverID          string       `json:"receiver_id"`
	BeneficiaryName     string       `json:"beneficiary_name"`
	Name                string       `json:"name"`
	SpeiClabe           string       `json:"spei_clabe"`
	SpeiInstitutionCode string       `json:"spei_institution_code"`
	SpeiProtocol        SpeiProtocol `json:"spei_protocol"`
}

func (i CreateSpeiInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.BeneficiaryName == "" {
		return fmt.Errorf("beneficiary_name is required")
	}
	if i.SpeiClabe == "" {
		return fmt.Errorf("spei_clabe is required")
	}
	if i.SpeiInstitutionCode == "" {
		return fmt.Errorf("spei_institution_code is required")
	}
	return i.SpeiProtocol.Validate()
}

type CreateSpeiResponse struct {
	ID                  string       `json:"id"`
	AccountType         string       `json:"type"`
	Name                string       `json:"name"`
	BeneficiaryName     string       `json:"beneficiary_name"`
	SpeiProtocol        SpeiProtocol `json:"spei_protocol"`
	SpeiInstitutionCode string       `json:"spei_institution_code"`
	SpeiClabe           string       `json:"spei_clabe"`
	CreatedAt           string       `json:"created_at"`
}

// CreateColombiaACHInput registers an ACH destination in Colombia.
type CreateColombiaACHInput struct {
	ReceiverID                 string          `json:"receiver_id"`
	Name                       string          `json:"name"`
	AccountType                BankAccountType `json:"account_type"`
	AchCopBeneficiaryFirstName string          `json:"ach_cop_beneficiary_first_name"`
	AchCopBeneficiaryLastName  string          `json:"ach_cop_beneficiary_last_name"`
	AchCopDocumentID           string          `json:"ach_cop_document_id"`
	AchCopDocumentType         AchCopDocument  `json:"ach_cop_document_type"`
	AchCopEmail                string          `json:"ach_cop_email"`
	AchCopBankCode             string          `json:"ach_cop_bank_code"`
	AchCopBankAccount          string          `json:"ach_cop_bank_account"`
}

func (i CreateColombiaACHInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := i.AccountType.Validate(); err != nil {
		return err
	}
	if i.AchCopBeneficiaryFirstName == "" {
		return fmt.Errorf("ach_cop_beneficiary_first_name is required")
	}
	if i.AchCopBeneficiaryLastName == "" {
		return fmt.Errorf("ach_cop_beneficiary_last_name is required")
	}
	if i.AchCopDocumentID == "" {
		return fmt.Errorf("ach_cop_document_id is required")
	}
	if err := i.AchCopDocumentType.Validate(); err != nil {
		return err
	}
	if err := validateEmail(i.AchCopEmail); err != nil {
		return err
	}
	if i.AchCopBankCode == "" {
		return fmt.Errorf("ach_cop_bank_code is required")
	}
	if i.AchCopBankAccount == "" {
		return fmt.Errorf("ach_cop_bank_account is required")
	}
	return nil
}

type CreateColombiaACHResponse struct {
	ID                         string          `json:"id"`
	AccountType                string          `json:"type"`
	Name                       string          `json:"name"`
	AccountTypeDetail          BankAccountType `json:"account_type_detail"`
	AchCopBeneficiaryFirstName string          `json:"ach_cop_beneficiary_first_name"`
	AchCopBeneficiaryLastName  string          `json:"ach_cop_beneficiary_last_name"`
	AchCopDocumentID           string          `json:"ach_cop_document_id"`
	AchCopDocumentType         AchCopDocument  `json:"ach_cop_document_type"`
	AchCopEmail                string          `json:"ach_cop_email"`
	AchCopBankCode             string          `json:"ach_cop_bank_code"`
	AchCopBankAccount          string          `json:"ach_cop_bank_account"`
	CreatedAt                  string          `json:"created_at"`
}

// CreateACHInput registers a US ACH destination.
type CreateACHInput struct {
	ReceiverID      string          `json:"receiver_id"`
	Name            string          `json:"name"`
	AccountClass    AccountClass    `json:"account_class"`
	AccountNumber   string          `json:"account_number"`
	AccountType     BankAccountType `json:"account_type"`
	BeneficiaryName string          `json:"beneficiary_name"`
	RoutingNumber   string          `json:"routing_number"`
}

func (i CreateACHInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := i.AccountClass.Validate(); err != nil {
		return err
	}
	if i.AccountNumber == "" {
		return fmt.Errorf("account_number is required")
	}
	if err := i.AccountType.Validate(); err != nil {
		return err
	}
	if i.BeneficiaryName == "" {
		return fmt.Errorf("beneficiary_name is required")
	}
	return validateRoutingNumber(i.RoutingNumber)
}

type CreateACHResponse struct {
	ID              string          `json:"id"`
	AccountType     string          `json:"type"`
	Name            string          `json:"name"`
	BeneficiaryName string          `json:"beneficiary_name"`
	RoutingNumber   string          `json:"routing_number"`
	AccountNumber   string          `json:"account_number"`
	BankAccountType BankAccountType `json:"account_type"`
	AccountClass    AccountClass    `json:"account_class"`
	CreatedAt       string          `json:"created_at"`
}

// CreateWireInput registers a US wire destination.
type CreateWireInput struct {
	ReceiverID          string  `json:"receiver_id"`
	Name                string  `json:"name"`
	AccountNumber       string  `json:"account_number"`
	BeneficiaryName     string  `json:"beneficiary_name"`
	RoutingNumber       string  `json:"routing_number"`
	AddressLine1        string  `json:"address_line_1"`
	AddressLine2        string  `json:"address_line_2,omitempty"`
	City                string  `json:"city"`
	StateProvinceRegion string  `json:"state_province_region"`
	Country             Country `json:"country"`
	PostalCode          string  `json:"postal_code"`
}

func (i CreateWireInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.AccountNumber == "" {
		return fmt.Errorf("account_number is required")
	}
	if i.BeneficiaryName == "" {
		return fmt.Errorf("beneficiary_name is required")
	}
	if err := validateRoutingNumber(i.RoutingNumber); err != nil {
		return err
	}
	if i.AddressLine1 == "" {
		return fmt.Errorf("address_line_1 is required")
	}
	if i.City == "" {
		return fmt.Errorf("city is required")
	}
	if i.StateProvinceRegion == "" {
		return fmt.Errorf("state_province_region is required")
	}
	if err := i.Country.Validate(); err != nil {
		return err
	}
	if i.PostalCode == "" {
		return fmt.Errorf("postal_code is required")
	}
	return nil
}

type CreateWireResponse struct {
	ID                  string  `json:"id"`
	AccountType         string  `json:"type"`
	Name                string  `json:"name"`
	BeneficiaryName     string  `json:"beneficiary_name"`
	RoutingNumber       string  `json:"routing_number"`
	AccountNumber       string  `json:"account_number"`
	AddressLine1        string  `json:"address_line_1"`
	AddressLine2        string  `json:"address_line_2,omitempty"`
	City                string  `json:"city"`
	StateProvinceRegion string  `json:"state_province_region"`
	Country             Country `json:"country"`
	PostalCode          string  `json:"postal_code"`
	CreatedAt           string  `json:"created_at"`
}

// CreateInternationalSwiftInput registers a SWIFT destination outside
// the supported local rails.
type CreateInternationalSwiftInput struct {
	ReceiverID                             string  `json:"receiver_id"`
	Name                                   string  `json:"name"`
	SwiftAccountHolderName                 string  `json:"swift_account_holder_name"`
	SwiftAccountNumberIban                 string  `json:"swift_account_number_iban"`
	SwiftBankAddressLine1                  string  `json:"swift_bank_address_line_1"`
	SwiftBankAddressLine2                  string  `json:"swift_bank_address_line_2,omitempty"`
	SwiftBankCity                          string  `json:"swift_bank_city"`
	SwiftBankCountry                       Country `json:"swift_bank_country"`
	SwiftBankName                          string  `json:"swift_bank_name"`
	SwiftBankPostalCode                    string  `json:"swift_bank_postal_code"`
	SwiftBankStateProvinceRegion           string  `json:"swift_bank_state_province_region"`
	SwiftBeneficiaryAddressLine1           string  `json:"swift_beneficiary_address_line_1"`
	SwiftBeneficiaryAddressLine2           string  `json:"swift_beneficiary_address_line_2,omitempty"`
	SwiftBeneficiaryCity                   string  `json:"swift_beneficiary_city"`
	SwiftBeneficiaryCountry                Country `json:"swift_beneficiary_country"`
	SwiftBeneficiaryPostalCode             string  `json:"swift_beneficiary_postal_code"`
	SwiftBeneficiaryStateProvinceRegion    string  `json:"swift_beneficiary_state_province_region"`
	SwiftCodeBic                           string  `json:"swift_code_bic"`
	SwiftIntermediaryBankAccountNumberIban string  `json:"swift_intermediary_bank_account_number_iban,omitempty"`
	SwiftIntermediaryBankCountry           Country `json:"swift_intermediary_bank_country,omitempty"`
	SwiftIntermediaryBankName              string  `json:"swift_intermediary_bank_name,omitempty"`
	SwiftIntermediaryBankSwiftCodeBic      string  `json:"swift_intermediary_bank_swift_code_bic,omitempty"`
}

func (i CreateInternationalSwiftInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateSwiftCode(i.SwiftCodeBic); err != nil {
		return err
	}
	if i.SwiftAccountHolderName == "" {
		return fmt.Errorf("swift_account_holder_name is required")
	}
	if i.SwiftAccountNumberIban == "" {
		return fmt.Errorf("swift_account_number_iban is required")
	}
	if i.SwiftBankName == "" {
		return fmt.Errorf("swift_bank_name is required")
	}
	if i.SwiftBankAddressLine1 == "" {
		return fmt.Errorf("swift_bank_address_line_1 is required")
	}
	if i.SwiftBankCity == "" {
		return fmt.Errorf("swift_bank_city is required")
	}
	if err := i.SwiftBankCountry.Validate(); err != nil {
		return err
	}
	if i.SwiftBankPostalCode == "" {
		return fmt.Errorf("swift_bank_postal_code is required")
	}
	if i.SwiftBankStateProvinceRegion == "" {
		return fmt.Errorf("swift_bank_state_province_region is required")
	}
	if i.SwiftBeneficiaryAddressLine1 == "" {
		return fmt.Errorf("swift_beneficiary_address_line_1 is required")
	}
	if i.SwiftBeneficiaryCity == "" {
		return fmt.Errorf("swift_beneficiary_city is required")
	}
	if err := i.SwiftBeneficiaryCountry.Validate(); err != nil {
		return err
	}
	if i.SwiftBeneficiaryPostalCode == "" {
		return fmt.Errorf("swift_beneficiary_postal_code is required")
	}
	if i.SwiftBeneficiaryStateProvinceRegion == "" {
		return fmt.Errorf("swift_beneficiary_state_province_region is required")
	}
	return nil
}

type CreateInternationalSwiftResponse struct {
	ID                     string `json:"id"`
	AccountType            string `json:"type"`
	Name                   string `json:"name"`
	SwiftCodeBic           string `json:"swift_code_bic"`
	SwiftAccountHolderName string `json:"swift_account_holder_name"`
	SwiftAccountNumberIban string `json:"swift_account_number_iban"`
	CreatedAt              string `json:"created_at"`
}

// CreateRTPInput registers a US real-time payments destination.
type CreateRTPInput struct {
	ReceiverID          string  `json:"receiver_id"`
	Name                string  `json:"name"`
	BeneficiaryName     string  `json:"beneficiary_name"`
	RoutingNumber       string  `json:"routing_number"`
	AccountNumber       string  `json:"account_number"`
	AddressLine1        string  `json:"address_line_1"`
	AddressLine2        string  `json:"address_line_2,omitempty"`
	City                string  `json:"city"`
	StateProvinceRegion string  `json:"state_province_region"`
	Country             Country `json:"country"`
	PostalCode          string  `json:"postal_code"`
}

func (i CreateRTPInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.BeneficiaryName == "" {
		return fmt.Errorf("beneficiary_name is required")
	}
	if err := validateRoutingNumber(i.RoutingNumber); err != nil {
		return err
	}
	if i.AccountNumber == "" {
		return fmt.Errorf("account_number is required")
	}
	if i.AddressLine1 == "" {
		return fmt.Errorf("address_line_1 is required")
	}
	if i.City == "" {
		return fmt.Errorf("city is required")
	}
	if i.StateProvinceRegion == "" {
		return fmt.Errorf("state_province_region is required")
	}
	if err := i.Country.Validate(); err != nil {
		return err
	}
	if i.PostalCode == "" {
		return fmt.Errorf("postal_code is required")
	}
	return nil
}

type CreateRTPResponse struct {
	ID                  string  `json:"id"`
	AccountType         string  `json:"type"`
	Name                string  `json:"name"`
	BeneficiaryName     string  `json:"beneficiary_name"`
	RoutingNumber       string  `json:"routing_number"`
	AccountNumber       string  `json:"account_number"`
	AddressLine1        string  `json:"address_line_1"`
	AddressLine2        string  `json:"address_line_2,omitempty"`
	City                string  `json:"city"`
	StateProvinceRegion string  `json:"state_province_region"`
	Country             Country `json:"country"`
	PostalCode          string  `json:"postal_code"`
	CreatedAt           string  `json:"created_at"`
}

type createPixRequest struct {
	CreatePixInput
	RailType Rail `json:"type"`
}

type createArgentinaTransfersRequest struct {
	CreateArgentinaTransfersInput
	RailType Rail `json:"type"`
}

type createSpeiRequest struct {
	CreateSpeiInput
	RailType Rail `json:"type"`
}

type createColombiaACHRequest struct {
	CreateColombiaACHInput
	RailType Rail `json:"type"`
}

type createACHRequest struct {
	CreateACHInput
	RailType Rail `json:"type"`
}

type createWireRequest struct {
	CreateWireInput
	RailType Rail `json:"type"`
}

type createInternationalSwiftRequest struct {
	CreateInternationalSwiftInput
	RailType Rail `json:"type"`
}

type createRTPRequest struct {
	CreateRTPInput
	RailType Rail `json:"type"`
}

// BankAccountsService manages the bank accounts registered under a
// receiver.
type BankAccountsService struct {
	client *Client
}

// List returns the bank accounts of a receiver.
func (s *BankAccountsService) List(ctx context.Context, receiverID string) (*ListBankAccountsResponse, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, receiverID)
	return get[ListBankAccountsResponse](ctx, s.client, path)
}

// Get retrieves a bank account by ID.
func (s *BankAccountsService) Get(ctx context.Context, receiverID, bankAccountID string) (*BankAccount, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}
	if bankAccountID == "" {
		return nil, fmt.Errorf("bankAccountID is required")
	}

	path := fmt.Sprintf(bankAccountPath, s.client.instanceID, receiverID, bankAccountID)
	return get[BankAccount](ctx, s.client, path)
}

// Delete removes a bank account.
func (s *BankAccountsService) Delete(ctx context.Context, receiverID, bankAccountID string) error {
	if receiverID == "" {
		return fmt.Errorf("receiverID is required")
	}
	if bankAccountID == "" {
		return fmt.Errorf("bankAccountID is required")
	}

	path := fmt.Sprintf(bankAccountPath, s.client.instanceID, receiverID, bankAccountID)
	return del(ctx, s.client, path)
}

// CreatePix registers a PIX bank account.
func (s *BankAccountsService) CreatePix(ctx context.Context, input CreatePixInput) (*CreatePixResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create pix input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreatePixResponse](ctx, s.client, path, createPixRequest{input, RailPix})
}

// CreateArgentinaTransfers registers an Argentina transfers bank
// account.
func (s *BankAccountsService) CreateArgentinaTransfers(ctx context.Context, input CreateArgentinaTransfersInput) (*CreateArgentinaTransfersResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create argentina transfers input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateArgentinaTransfersResponse](ctx, s.client, path, createArgentinaTransfersRequest{input, RailTransfersBitso})
}

// CreateSpei registers a SPEI bank account.
func (s *BankAccountsService) CreateSpei(ctx context.Context, input CreateSpeiInput) (*CreateSpeiResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create spei input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateSpeiResponse](ctx, s.client, path, createSpeiRequest{input, RailSpeiBitso})
}

// CreateColombiaACH registers a Colombia ACH bank account.
func (s *BankAccountsService) CreateColombiaACH(ctx context.Context, input CreateColombiaACHInput) (*CreateColombiaACHResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create colombia ach input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateColombiaACHResponse](ctx, s.client, path, createColombiaACHRequest{input, RailACHCopBitso})
}

// CreateACH registers a US ACH bank account.
func (s *BankAccountsService) CreateACH(ctx context.Context, input CreateACHInput) (*CreateACHResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create ach input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateACHResponse](ctx, s.client, path, createACHRequest{input, RailACH})
}

// CreateWire registers a US wire bank account.
func (s *BankAccountsService) CreateWire(ctx context.Context, input CreateWireInput) (*CreateWireResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create wire input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateWireResponse](ctx, s.client, path, createWireRequest{input, RailWire})
}

// CreateInternationalSwift registers an international SWIFT bank
// account.
func (s *BankAccountsService) CreateInternationalSwift(ctx context.Context, input CreateInternationalSwiftInput) (*CreateInternationalSwiftResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create international swift input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateInternationalSwiftResponse](ctx, s.client, path, createInternationalSwiftRequest{input, RailInternationalSwift})
}

// CreateRTP registers a US RTP bank account.
func (s *BankAccountsService) CreateRTP(ctx context.Context, input CreateRTPInput) (*CreateRTPResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create rtp input: %w", err)
	}

	path := fmt.Sprintf(bankAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[CreateRTPResponse](ctx, s.client, path, createRTPRequest{input, RailRTP})
}
