package blindpay

import (
	"context"
	"fmt"
)

const (
	receiversPath      = "/instances/%s/receivers"
	receiverPath       = "/instances/%s/receivers/%s"
	receiverLimitsPath = "/instances/%s/limits/receivers/%s"
)

// ProofOfAddressDocType classifies a receiver's proof of address
// document.
type ProofOfAddressDocType string

const (
	ProofOfAddressDocTypeUtilityBill              ProofOfAddressDocType = "UTILITY_BILL"
	ProofOfAddressDocTypeBankStatement            ProofOfAddressDocType = "BANK_STATEMENT"
	ProofOfAddressDocTypeRentalAgreement          ProofOfAddressDocType = "RENTAL_AGREEMENT"
	ProofOfAddressDocTypeTaxDocument              ProofOfAddressDocType = "TAX_DOCUMENT"
	ProofOfAddressDocTypeGovernmentCorrespondence ProofOfAddressDocType = "GOVERNMENT_CORRESPONDENCE"
)

func (dt ProofOfAddressDocType) Validate() error {
	switch dt {
	case ProofOfAddressDocTypeUtilityBill, ProofOfAddressDocTypeBankStatement,
		ProofOfAddressDocTypeRentalAgreement, ProofOfAddressDocTypeTaxDocument,
		ProofOfAddressDocTypeGovernmentCorrespondence:
		return nil
	}
	return fmt.Errorf("invalid proof of address document type %q", dt)
}

// PurposeOfTransactions declares why a receiver transacts, collected
// during enhanced KYC.
type PurposeOfTransactions string

const (
	PurposeBusinessTransactions            PurposeOfTransactions = "business_transactions"
	PurposeCharitableDonations             PurposeOfTransactions = "charitable_donations"
	PurposeInvestmentPurposes              PurposeOfTransactions = "investment_purposes"
	PurposePaymentsToFriendsOrFamilyAbroad PurposeOfTransactions = "payments_to_friends_or_family_abroad"
	PurposePersonalOrLivingExpenses        PurposeOfTransactions = "personal_or_living_expenses"
	PurposeProtectWealth                   PurposeOfTransactions = "protect_wealth"
	PurposePurchaseGoodAndServices         PurposeOfTransactions = "purchase_good_and_services"
	PurposeReceivePaymentForFreelancing    PurposeOfTransactions = "receive_payment_for_freelancing"
	PurposeReceiveSalary                   PurposeOfTransactions = "receive_salary"
	PurposeOther                           PurposeOfTransactions = "other"
)

// SourceOfFundsDocType classifies a receiver's source of funds document.
type SourceOfFundsDocType string

const (
	SourceOfFundsBusinessIncome         SourceOfFundsDocType = "business_income"
	SourceOfFundsGamblingProceeds       SourceOfFundsDocType = "gambling_proceeds"
	SourceOfFundsGifts                  SourceOfFundsDocType = "gifts"
	SourceOfFundsGovernmentBenefits     SourceOfFundsDocType = "government_benefits"
	SourceOfFundsInheritance            SourceOfFundsDocType = "inheritance"
	SourceOfFundsInvestmentLoans        SourceOfFundsDocType = "investment_loans"
	SourceOfFundsPensionRetirement      SourceOfFundsDocType = "pension_retirement"
	SourceOfFundsSalary                 SourceOfFundsDocType = "salary"
	SourceOfFundsSaleOfAssetsRealEstate SourceOfFundsDocType = "sale_of_assets_real_estate"
	SourceOfFundsSavings                SourceOfFundsDocType = "savings"
	SourceOfFundsEsops                  SourceOfFundsDocType = "esops"
	SourceOfFundsInvestmentProceeds     SourceOfFundsDocType = "investment_proceeds"
	SourceOfFundsSomeoneElseFunds       SourceOfFundsDocType = "someone_else_funds"
)

// IdentificationDocument is the kind of identity document backing a KYC
// submission.
type IdentificationDocument string

const (
	IdentificationDocumentPassport IdentificationDocument = "PASSPORT"
	IdentificationDocumentIDCard   IdentificationDocument = "ID_CARD"
	IdentificationDocumentDrivers  IdentificationDocument = "DRIVERS"
)

func (d IdentificationDocument) Validate() error {
	switch d {
	case IdentificationDocumentPassport, IdentificationDocumentIDCard,
		IdentificationDocumentDrivers:
		return nil
	}
	return fmt.Errorf("invalid identification document %q", d)
}

// KYCType is the verification tier a receiver was onboarded with.
type KYCType string

const (
	KYCTypeLight    KYCType = "light"
	KYCTypeStandard KYCType = "standard"
	KYCTypeEnhanced KYCType = "enhanced"
)

// OwnerRole is the role of a business receiver's declared owner.
type OwnerRole string

const (
	OwnerRoleBeneficialControlling OwnerRole = "beneficial_controlling"
	OwnerRoleBeneficialOwner       OwnerRole = "beneficial_owner"
	OwnerRoleControllingPerson     OwnerRole = "controlling_person"
)

// Owner is a declared owner of a business receiver.
type Owner struct {
	ID                    string                 `json:"id,omitempty"`
	Role                  OwnerRole              `json:"role"`
	FirstName             string                 `json:"first_name"`
	LastName              string                 `json:"last_name"`
	DateOfBirth           string                 `json:"date_of_birth"`
	TaxID                 string                 `json:"tax_id"`
	AddressLine1          string                 `json:"address_line_1"`
	AddressLine2          string                 `json:"address_line_2,omitempty"`
	City                  string                 `json:"city"`
	StateProvinceRegion   string                 `json:"state_province_region"`
	Country               Country                `json:"country"`
	PostalCode            string                 `json:"postal_code"`
	IDDocCountry          Country                `json:"id_doc_country"`
	IDDocType             IdentificationDocument `json:"id_doc_type"`
	IDDocFrontFile        string                 `json:"id_doc_front_file"`
	IDDocBackFile         string                 `json:"id_doc_back_file,omitempty"`
	ProofOfAddressDocType ProofOfAddressDocType  `json:"proof_of_address_doc_type"`
	ProofOfAddressDocFile string                 `json:"proof_of_address_doc_file"`
}

// KYCWarning is an outstanding issue raised during KYC review.
type KYCWarning struct {
	Code             string `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
	ResolutionStatus string `json:"resolution_status,omitempty"`
	WarningID        string `json:"warning_id,omitempty"`
}

// ReceiverLimits are the amounts a receiver may move, in cents.
type ReceiverLimits struct {
	PerTransaction uint64 `json:"per_transaction"`
	Daily          uint64 `json:"daily"`
	Monthly        uint64 `json:"monthly"`
}

// Receiver is a person or business that receives payouts on an
// instance.
type Receiver struct {
	ID            string       `json:"id"`
	IsTosAccepted bool         `json:"is_tos_accepted"`
	AccountType   AccountClass `json:"type"`
	KYCType       KYCType      `json:"kyc_type"`
	KYCStatus     string       `json:"kyc_status"`
	KYCWarnings   []KYCWarning `json:"kyc_warnings,omitempty"`

	Email                 string                `json:"email"`
	TaxID                 string                `json:"tax_id"`
	AddressLine1          string                `json:"address_line_1"`
	AddressLine2          string                `json:"address_line_2,omitempty"`
	City                  string                `json:"city"`
	StateProvinceRegion   string                `json:"state_province_region"`
	Country               Country               `json:"country"`
	PostalCode            string                `json:"postal_code"`
	IPAddress             string                `json:"ip_address,omitempty"`
	ImageURL              string                `json:"image_url,omitempty"`
	PhoneNumber           string                `json:"phone_number,omitempty"`
	ProofOfAddressDocType ProofOfAddressDocType `json:"proof_of_address_doc_type"`
	ProofOfAddressDocFile string                `json:"proof_of_address_doc_file"`

	// Individual receivers only.
	FirstName      string                 `json:"first_name,omitempty"`
	LastName       string                 `json:"last_name,omitempty"`
	DateOfBirth    string                 `json:"date_of_birth,omitempty"`
	IDDocCountry   Country                `json:"id_doc_country,omitempty"`
	IDDocType      IdentificationDocument `json:"id_doc_type,omitempty"`
	IDDocFrontFile string                 `json:"id_doc_front_file,omitempty"`
	IDDocBackFile  string                 `json:"id_doc_back_file,omitempty"`

	// Business receivers only.
	LegalName               string  `json:"legal_name,omitempty"`
	AlternateName           string  `json:"alternate_name,omitempty"`
	FormationDate           string  `json:"formation_date,omitempty"`
	Website                 string  `json:"website,omitempty"`
	Owners                  []Owner `json:"owners,omitempty"`
	IncorporationDocFile    string  `json:"incorporation_doc_file,omitempty"`
	ProofOfOwnershipDocFile string  `json:"proof_of_ownership_doc_file,omitempty"`

	// Enhanced KYC only.
	SourceOfFundsDocType             string                `json:"source_of_funds_doc_type,omitempty"`
	SourceOfFundsDocFile             string                `json:"source_of_funds_doc_file,omitempty"`
	IndividualHoldingDocFrontFile    string                `json:"individual_holding_doc_front_file,omitempty"`
	PurposeOfTransactions            PurposeOfTransactions `json:"purpose_of_transactions,omitempty"`
	PurposeOfTransactionsExplanation string                `json:"purpose_of_transactions_explanation,omitempty"`

	AipriseValidationKey string         `json:"aiprise_validation_key"`
	InstanceID           string         `json:"instance_id"`
	ExternalID           string         `json:"external_id,omitempty"`
	TOSID                string         `json:"tos_id,omitempty"`
	CreatedAt            string         `json:"created_at"`
	UpdatedAt            string         `json:"updated_at"`
	Limit                ReceiverLimits `json:"limit"`
}

// CreateIndividualWithStandardKYCInput is the payload for onboarding an
// individual receiver at the standard KYC tier.
type CreateIndividualWithStandardKYCInput struct {
	ExternalID            string                 `json:"external_id,omitempty"`
	AddressLine1          string                 `json:"address_line_1"`
	AddressLine2          string                 `json:"address_line_2,omitempty"`
	City                  string                 `json:"city"`
	Country               Country                `json:"country"`
	DateOfBirth           string                 `json:"date_of_birth"`
	Email                 string                 `json:"email"`
	FirstName             string                 `json:"first_name"`
	PhoneNumber           string                 `json:"phone_number,omitempty"`
	IDDocCountry          Country                `json:"id_doc_country"`
	IDDocFrontFile        string                 `json:"id_doc_front_file"`
	IDDocType             IdentificationDocument `json:"id_doc_type"`
	IDDocBackFile         string                 `json:"id_doc_back_file,omitempty"`
	LastName              string                 `json:"last_name"`
	PostalCode            string                 `json:"postal_code"`
	ProofOfAddressDocFile string                 `json:"proof_of_address_doc_file"`
	ProofOfAddressDocType ProofOfAddressDocType  `json:"proof_of_address_doc_type"`
	StateProvinceRegion   string                 `json:"state_province_region"`
	TaxID                 string                 `json:"tax_id"`
	TOSID                 string                 `json:"tos_id"`
}

// Validate validates the input fields before dispatch.
func (i CreateIndividualWithStandardKYCInput) Validate() error {
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	if i.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if i.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if i.DateOfBirth == "" {
		return fmt.Errorf("date_of_birth is required")
	}
	if i.TaxID == "" {
		return fmt.Errorf("tax_id is required")
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
	if i.PostalCode == "" {
		return fmt.Errorf("postal_code is required")
	}
	if err := i.Country.Validate(); err != nil {
		return err
	}
	if err := i.IDDocCountry.Validate(); err != nil {
		return err
	}
	if err := i.IDDocType.Validate(); err != nil {
		return err
	}
	if i.IDDocFrontFile == "" {
		return fmt.Errorf("id_doc_front_file is required")
	}
	if err := i.ProofOfAddressDocType.Validate(); err != nil {
		return err
	}
	if i.ProofOfAddressDocFile == "" {
		return fmt.Errorf("proof_of_address_doc_file is required")
	}
	if i.TOSID == "" {
		return fmt.Errorf("tos_id is required")
	}
	if i.PhoneNumber != "" {
		if err := validatePhoneNumber(i.PhoneNumber); err != nil {
			return err
		}
	}
	return nil
}

type createIndividualReceiverRequest struct {
	CreateIndividualWithStandardKYCInput
	KYCType     KYCType      `json:"kyc_type"`
	AccountType AccountClass `json:"type"`
}

// CreateReceiverResponse is the API's acknowledgment of a new receiver.
type CreateReceiverResponse struct {
	ID string `json:"id"`
}

// GetReceiverLimitsResponse breaks down a receiver's remaining limits.
type GetReceiverLimitsResponse struct {
	Limits ReceiverLimitsBreakdown `json:"limits"`
}

type ReceiverLimitsBreakdown struct {
	Payin  LimitValues `json:"payin"`
	Payout LimitValues `json:"payout"`
}

type LimitValues struct {
	Daily   uint64 `json:"daily"`
	Monthly uint64 `json:"monthly"`
}

// ReceiversService manages the receivers of an instance.
type ReceiversService struct {
	client *Client
}

// List returns all receivers of the instance.
func (s *ReceiversService) List(ctx context.Context) ([]Receiver, error) {
	path := fmt.Sprintf(receiversPath, s.client.instanceID)
	receivers, err := get[[]Receiver](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *receivers, nil
}

// CreateIndividualWithStandardKYC onboards an individual receiver at the
// standard KYC tier.
func (s *ReceiversService) CreateIndividualWithStandardKYC(ctx context.Context, input CreateIndividualWithStandardKYCInput) (*CreateReceiverResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create receiver input: %w", err)
	}

	body := createIndividualReceiverRequest{
		CreateIndividualWithStandardKYCInput: input,
		KYCType:                              KYCTypeStandard,
		AccountType:                          AccountClassIndividual,
	}
	path := fmt.Sprintf(receiversPath, s.client.instanceID)
	return post[CreateReceiverResponse](ctx, s.client, path, body)
}

// Get retrieves a receiver by ID.
func (s *ReceiversService) Get(ctx context.Context, receiverID string) (*Receiver, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(receiverPath, s.client.instanceID, receiverID)
	return get[Receiver](ctx, s.client, path)
}

// Delete removes a receiver.
func (s *ReceiversService) Delete(ctx context.Context, receiverID string) error {
	if receiverID == "" {
		return fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(receiverPath, s.client.instanceID, receiverID)
	return del(ctx, s.client, path)
}

// GetLimits retrieves a receiver's payin and payout limits.
func (s *ReceiversService) GetLimits(ctx context.Context, receiverID string) (*GetReceiverLimitsResponse, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(receiverLimitsPath, s.client.instanceID, receiverID)
	return get[GetReceiverLimitsResponse](ctx, s.client, path)
}

// TODO: add the business and light/enhanced KYC creation variants.
