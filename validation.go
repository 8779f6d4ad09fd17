package blindpay

import (
	"fmt"
	"regexp"

	"github.com/asaskevich/govalidator"
	"github.com/nyaruka/phonenumbers"
	"github.com/stellar/go/strkey"
)

var (
	// rxPhone matches phone numbers in the E.164 standard https://en.wikipedia.org/wiki/E.164
	rxPhone = regexp.MustCompile(`^\+[1-9]{1}[0-9]{9,14}$`)
	// rxEmail is a permissive RFC 5322 style e-mail check.
	rxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	// rxRoutingNumber matches ABA routing transit numbers.
	rxRoutingNumber = regexp.MustCompile(`^\d{9}$`)
	// rxEVMAddress matches 20-byte hex EVM addresses.
	rxEVMAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	// rxSolanaAddress matches base58 Solana public keys.
	rxSolanaAddress = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	// rxSwiftCode matches 8 or 11 character SWIFT/BIC codes.
	rxSwiftCode = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

	errInvalidPhoneNumber = fmt.Errorf("the provided phone number is not a valid E.164 number")
)

func validatePhoneNumber(phoneNumberStr string) error {
	if phoneNumberStr == "" {
		return fmt.Errorf("phone number cannot be empty")
	}

	if !rxPhone.MatchString(phoneNumberStr) {
		return errInvalidPhoneNumber
	}

	parsedNumber, err := phonenumbers.Parse(phoneNumberStr, "")
	if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
		// Parsing error, not a valid phone number
		return errInvalidPhoneNumber
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !rxEmail.MatchString(email) {
		return fmt.Errorf("the provided email is not valid")
	}

	return nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}

	if !govalidator.IsURL(rawURL) {
		return fmt.Errorf("%q is not a valid URL", rawURL)
	}

	return nil
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("the provided amount must be greater than zero")
	}

	return nil
}

func validateRoutingNumber(routingNumber string) error {
	if !rxRoutingNumber.MatchString(routingNumber) {
		return fmt.Errorf("the provided routing number is not a valid 9 digits value")
	}

	return nil
}

func validateEVMAddress(address string) error {
	if !rxEVMAddress.MatchString(address) {
		return fmt.Errorf("the provided address is not a valid EVM address")
	}

	return nil
}

func validateSwiftCode(swiftCode string) error {
	if !rxSwiftCode.MatchString(swiftCode) {
		return fmt.Errorf("the provided SWIFT/BIC code is not valid")
	}

	return nil
}

func validateStellarAddress(address string) error {
	if !strkey.IsValidEd25519PublicKey(address) {
		return fmt.Errorf("the provided address is not a valid Stellar public key")
	}

	return nil
}

func validateSolanaAddress(address string) error {
	if !rxSolanaAddress.MatchString(address) {
		return fmt.Errorf("the provided address is not a valid Solana public key")
	}

	return nil
}
