package blindpay

import "fmt"

// CurrencyType tells the API which side of a conversion a requested
// amount is denominated in.
type CurrencyType string

const (
	CurrencyTypeSender   CurrencyType = "sender"
	CurrencyTypeReceiver CurrencyType = "receiver"
)

// Validate checks that the currency type is one the API recognizes.
func (ct CurrencyType) Validate() error {
	switch ct {
	case CurrencyTypeSender, CurrencyTypeReceiver:
		return nil
	}
	return fmt.Errorf("invalid currency type %q", ct)
}

// Network identifies the blockchain network a payment settles on.
type Network string

const (
	NetworkBase            Network = "base"
	NetworkSepolia         Network = "sepolia"
	NetworkArbitrumSepolia Network = "arbitrum_sepolia"
	NetworkBaseSepolia     Network = "base_sepolia"
	NetworkArbitrum        Network = "arbitrum"
	NetworkPolygon         Network = "polygon"
	NetworkPolygonAmoy     Network = "polygon_amoy"
	NetworkEthereum        Network = "ethereum"
	NetworkStellar         Network = "stellar"
	NetworkStellarTestnet  Network = "stellar_testnet"
	NetworkTron            Network = "tron"
	NetworkSolana          Network = "solana"
	NetworkSolanaDevnet    Network = "solana_devnet"
)

// Validate checks that the network is one the API recognizes.
func (n Network) Validate() error {
	switch n {
	case NetworkBase, NetworkSepolia, NetworkArbitrumSepolia, NetworkBaseSepolia,
		NetworkArbitrum, NetworkPolygon, NetworkPolygonAmoy, NetworkEthereum,
		NetworkStellar, NetworkStellarTestnet, NetworkTron, NetworkSolana,
		NetworkSolanaDevnet:
		return nil
	}
	return fmt.Errorf("invalid network %q", n)
}

// StablecoinToken is a token the API can settle payments in.
type StablecoinToken string

const (
	StablecoinTokenUSDC StablecoinToken = "USDC"
	StablecoinTokenUSDT StablecoinToken = "USDT"
	StablecoinTokenUSDB StablecoinToken = "USDB"
)

func (t StablecoinToken) Validate() error {
	switch t {
	case StablecoinTokenUSDC, StablecoinTokenUSDT, StablecoinTokenUSDB:
		return nil
	}
	return fmt.Errorf("invalid stablecoin token %q", t)
}

// TransactionDocumentType classifies the supporting document attached to
// a quote.
type TransactionDocumentType string

const (
	TransactionDocumentTypeInvoice            TransactionDocumentType = "invoice"
	TransactionDocumentTypePurchaseOrder      TransactionDocumentType = "purchase_order"
	TransactionDocumentTypeDeliverySlip       TransactionDocumentType = "delivery_slip"
	TransactionDocumentTypeContract           TransactionDocumentType = "contract"
	TransactionDocumentTypeCustomsDeclaration TransactionDocumentType = "customs_declaration"
	TransactionDocumentTypeBillOfLading       TransactionDocumentType = "bill_of_lading"
	TransactionDocumentTypeOthers             TransactionDocumentType = "others"
)

func (dt TransactionDocumentType) Validate() error {
	switch dt {
	case TransactionDocumentTypeInvoice, TransactionDocumentTypePurchaseOrder,
		TransactionDocumentTypeDeliverySlip, TransactionDocumentTypeContract,
		TransactionDocumentTypeCustomsDeclaration, TransactionDocumentTypeBillOfLading,
		TransactionDocumentTypeOthers:
		return nil
	}
	return fmt.Errorf("invalid transaction document type %q", dt)
}

// BankAccountType distinguishes checking from savings accounts on rails
// that care about it.
type BankAccountType string

const (
	BankAccountTypeChecking BankAccountType = "checking"
	BankAccountTypeSaving   BankAccountType = "saving"
)

func (at BankAccountType) Validate() error {
	switch at {
	case BankAccountTypeChecking, BankAccountTypeSaving:
		return nil
	}
	return fmt.Errorf("invalid bank account type %q", at)
}

// Currency is any currency the API quotes in, fiat or stablecoin.
type Currency string

const (
	CurrencyUSDC Currency = "USDC"
	CurrencyUSDT Currency = "USDT"
	CurrencyUSDB Currency = "USDB"
	CurrencyBRL  Currency = "BRL"
	CurrencyUSD  Currency = "USD"
	CurrencyMXN  Currency = "MXN"
	CurrencyCOP  Currency = "COP"
	CurrencyARS  Currency = "ARS"
)

func (c Currency) Validate() error {
	switch c {
	case CurrencyUSDC, CurrencyUSDT, CurrencyUSDB, CurrencyBRL, CurrencyUSD,
		CurrencyMXN, CurrencyCOP, CurrencyARS:
		return nil
	}
	return fmt.Errorf("invalid currency %q", c)
}

// Rail is a local payment rail payouts can be delivered over.
type Rail string

const (
	RailWire               Rail = "wire"
	RailACH                Rail = "ach"
	RailPix                Rail = "pix"
	RailSpeiBitso          Rail = "spei_bitso"
	RailTransfersBitso     Rail = "transfers_bitso"
	RailACHCopBitso        Rail = "ach_cop_bitso"
	RailInternationalSwift Rail = "international_swift"
	RailRTP                Rail = "rtp"
)

func (r Rail) Validate() error {
	switch r {
	case RailWire, RailACH, RailPix, RailSpeiBitso, RailTransfersBitso,
		RailACHCopBitso, RailInternationalSwift, RailRTP:
		return nil
	}
	return fmt.Errorf("invalid rail %q", r)
}

// AccountClass separates individual from business receivers.
type AccountClass string

const (
	AccountClassIndividual AccountClass = "individual"
	AccountClassBusiness   AccountClass = "business"
)

func (ac AccountClass) Validate() error {
	switch ac {
	case AccountClassIndividual, AccountClassBusiness:
		return nil
	}
	return fmt.Errorf("invalid account class %q", ac)
}

// TransactionStatus is the lifecycle state of a payin or payout.
type TransactionStatus string

const (
	TransactionStatusRefunded   TransactionStatus = "refunded"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusOnHold     TransactionStatus = "on_hold"
)

// Country is an ISO 3166-1 alpha-2 code for a supported corridor.
type Country string

const (
	CountryUS Country = "US"
	CountryBR Country = "BR"
	CountryMX Country = "MX"
	CountryAR Country = "AR"
	CountryCO Country = "CO"
)

func (c Country) Validate() error {
	switch c {
	case CountryUS, CountryBR, CountryMX, CountryAR, CountryCO:
		return nil
	}
	return fmt.Errorf("invalid country %q", c)
}

// ListOptions are the pagination parameters accepted by list operations.
// The zero value (or a nil pointer) requests the API defaults.
type ListOptions struct {
	Limit         int    `schema:"limit,omitempty"`
	Offset        int    `schema:"offset,omitempty"`
	StartingAfter string `schema:"starting_after,omitempty"`
	EndingBefore  string `schema:"ending_before,omitempty"`
}

// Pagination is the cursor metadata attached to paginated list
// responses.
type Pagination struct {
	HasMore  bool   `json:"has_more"`
	NextPage string `json:"next_page"`
	PrevPage string `json:"prev_page"`
}

// ArgentinaTransfers is the account identifier kind used on the
// Argentine transfers rail.
type ArgentinaTransfers string

const (
	ArgentinaTransfersCVU   ArgentinaTransfers = "CVU"
	ArgentinaTransfersCBU   ArgentinaTransfers = "CBU"
	ArgentinaTransfersAlias ArgentinaTransfers = "ALIAS"
)

func (at ArgentinaTransfers) Validate() error {
	switch at {
	case ArgentinaTransfersCVU, ArgentinaTransfersCBU, ArgentinaTransfersAlias:
		return nil
	}
	return fmt.Errorf("invalid argentina transfers account type %q", at)
}

// AchCopDocument is a Colombian identity document kind.
type AchCopDocument string

const (
	AchCopDocumentCC   AchCopDocument = "CC"
	AchCopDocumentCE   AchCopDocument = "CE"
	AchCopDocumentNIT  AchCopDocument = "NIT"
	AchCopDocumentPass AchCopDocument = "PASS"
	AchCopDocumentPEP  AchCopDocument = "PEP"
)

func (d AchCopDocument) Validate() error {
	switch d {
	case AchCopDocumentCC, AchCopDocumentCE, AchCopDocumentNIT,
		AchCopDocumentPass, AchCopDocumentPEP:
		return nil
	}
	return fmt.Errorf("invalid ach_cop document type %q", d)
}

// PayinPaymentMethod is the local method a payer funds a payin with.
type PayinPaymentMethod string

const (
	PayinPaymentMethodACH       PayinPaymentMethod = "ach"
	PayinPaymentMethodWire      PayinPaymentMethod = "wire"
	PayinPaymentMethodPix       PayinPaymentMethod = "pix"
	PayinPaymentMethodSpei      PayinPaymentMethod = "spei"
	PayinPaymentMethodTransfers PayinPaymentMethod = "transfers"
	PayinPaymentMethodPse       PayinPaymentMethod = "pse"
)

func (pm PayinPaymentMethod) Validate() error {
	switch pm {
	case PayinPaymentMethodACH, PayinPaymentMethodWire, PayinPaymentMethodPix,
		PayinPaymentMethodSpei, PayinPaymentMethodTransfers, PayinPaymentMethodPse:
		return nil
	}
	return fmt.Errorf("invalid payin payment method %q", pm)
}

// PayerRules restricts who may fund a payin quote.
type PayerRules struct {
	PixAllowedTaxIDs      []string       `json:"pix_allowed_tax_ids,omitempty"`
	TransfersAllowedTaxID string         `json:"transfers_allowed_tax_id,omitempty"`
	PseAllowedTaxIDs      []string       `json:"pse_allowed_tax_ids,omitempty"`
	PseFullName           string         `json:"pse_full_name,omitempty"`
	PseDocumentType       AchCopDocument `json:"pse_document_type,omitempty"`
	PseDocumentNumber     string         `json:"pse_document_number,omitempty"`
	PseEmail              string         `json:"pse_email,omitempty"`
	PsePhone              string         `json:"pse_phone,omitempty"`
	PseBankCode           string         `json:"pse_bank_code,omitempty"`
}
