package entities

import (
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// PaymentMethodKind identifies the concrete payment-method variant.
type PaymentMethodKind string

const (
	PaymentMethodKindCreditCard       PaymentMethodKind = "credit_card"
	PaymentMethodKindPayPalAccount    PaymentMethodKind = "paypal_account"
	PaymentMethodKindApplePayCard     PaymentMethodKind = "apple_pay_card"
	PaymentMethodKindAndroidPayCard   PaymentMethodKind = "android_pay_card"
	PaymentMethodKindCoinbaseAccount  PaymentMethodKind = "coinbase_account"
	PaymentMethodKindNonce            PaymentMethodKind = "payment_method_nonce"
	PaymentMethodKindUsBankAccount    PaymentMethodKind = "us_bank_account"
	PaymentMethodKindVenmoAccount     PaymentMethodKind = "venmo_account"
	PaymentMethodKindVisaCheckoutCard PaymentMethodKind = "visa_checkout_card"
	PaymentMethodKindMasterpassCard   PaymentMethodKind = "masterpass_card"
	PaymentMethodKindUnknown          PaymentMethodKind = "unknown"
)

// UnknownPaymentMethodImageURL is the logo the processor serves for unrecognized methods.
const UnknownPaymentMethodImageURL = "https://assets.braintreegateway.com/payment_method_logo/unknown.png"

// Attributes is a decoded JSON object as returned by the processor (camelCase keys).
type Attributes map[string]any

// PaymentMethod is the closed set of payment-method variants.
//
// Values are built once per response and never mutated afterwards.
type PaymentMethod interface {
	Kind() PaymentMethodKind
	// Identifier is the vault token, or the nonce for PaymentMethodNonce.
	Identifier() string
	Raw() Attributes
	sealed()
}

// CreditCard is a vaulted card.
type CreditCard struct {
	Token           string `mapstructure:"token"`
	Bin             string `mapstructure:"bin"`
	Last4           string `mapstructure:"last4"`
	CardType        string `mapstructure:"cardType"`
	CardholderName  string `mapstructure:"cardholderName"`
	ExpirationMonth string `mapstructure:"expirationMonth"`
	ExpirationYear  string `mapstructure:"expirationYear"`
	CustomerID      string `mapstructure:"customerId"`
	Default         bool   `mapstructure:"default"`
	Expired         bool   `mapstructure:"expired"`
	ImageURL        string `mapstructure:"imageUrl"`
	UniqueNumberID  string `mapstructure:"uniqueNumberIdentifier"`

	MaskedNumber   string `mapstructure:"-"`
	ExpirationDate string `mapstructure:"-"`

	Attributes Attributes `mapstructure:"-"`
}

// NewCreditCard builds a CreditCard from its creditCard sub-object.
func NewCreditCard(attrs Attributes) *CreditCard {
	c := &CreditCard{Attributes: attrs}
	decodeAttributes(attrs, c)
	c.MaskedNumber = maskedNumber(c.Bin, c.Last4)
	c.ExpirationDate = expirationDate(c.ExpirationMonth, c.ExpirationYear)
	return c
}

func (c *CreditCard) Kind() PaymentMethodKind { return PaymentMethodKindCreditCard }
func (c *CreditCard) Identifier() string      { return c.Token }
func (c *CreditCard) Raw() Attributes         { return c.Attributes }
func (c *CreditCard) sealed()                 {}

// PayPalAccount is a vaulted PayPal account.
type PayPalAccount struct {
	Token              string `mapstructure:"token"`
	Email              string `mapstructure:"email"`
	PayerID            string `mapstructure:"payerId"`
	BillingAgreementID string `mapstructure:"billingAgreementId"`
	CustomerID         string `mapstructure:"customerId"`
	Default            bool   `mapstructure:"default"`
	ImageURL           string `mapstructure:"imageUrl"`

	Attributes Attributes `mapstructure:"-"`
}

func NewPayPalAccount(attrs Attributes) *PayPalAccount {
	p := &PayPalAccount{Attributes: attrs}
	decodeAttributes(attrs, p)
	return p
}

func (p *PayPalAccount) Kind() PaymentMethodKind { return PaymentMethodKindPayPalAccount }
func (p *PayPalAccount) Identifier() string      { return p.Token }
func (p *PayPalAccount) Raw() Attributes         { return p.Attributes }
func (p *PayPalAccount) sealed()                 {}

// ApplePayCard is a card provisioned through Apple Pay.
type ApplePayCard struct {
	Token                 string `mapstructure:"token"`
	Bin                   string `mapstructure:"bin"`
	Last4                 string `mapstructure:"last4"`
	CardType              string `mapstructure:"cardType"`
	ExpirationMonth       string `mapstructure:"expirationMonth"`
	ExpirationYear        string `mapstructure:"expirationYear"`
	PaymentInstrumentName string `mapstructure:"paymentInstrumentName"`
	SourceDescription     string `mapstructure:"sourceDescription"`
	CustomerID            string `mapstructure:"customerId"`
	Default               bool   `mapstructure:"default"`
	Expired               bool   `mapstructure:"expired"`
	ImageURL              string `mapstructure:"imageUrl"`

	Attributes Attributes `mapstructure:"-"`
}

func NewApplePayCard(attrs Attributes) *ApplePayCard {
	a := &ApplePayCard{Attributes: attrs}
	decodeAttributes(attrs, a)
	return a
}

func (a *ApplePayCard) Kind() PaymentMethodKind { return PaymentMethodKindApplePayCard }
func (a *ApplePayCard) Identifier() string      { return a.Token }
func (a *ApplePayCard) Raw() Attributes         { return a.Attributes }
func (a *ApplePayCard) sealed()                 {}

// AndroidPayCard is a card provisioned through Android Pay. CardType and Last4
// describe the virtual card the processor charges.
type AndroidPayCard struct {
	Token               string `mapstructure:"token"`
	Bin                 string `mapstructure:"bin"`
	SourceCardType      string `mapstructure:"sourceCardType"`
	SourceCardLast4     string `mapstructure:"sourceCardLast4"`
	SourceDescription   string `mapstructure:"sourceDescription"`
	VirtualCardType     string `mapstructure:"virtualCardType"`
	VirtualCardLast4    string `mapstructure:"virtualCardLast4"`
	GoogleTransactionID string `mapstructure:"googleTransactionId"`
	ExpirationMonth     string `mapstructure:"expirationMonth"`
	ExpirationYear      string `mapstructure:"expirationYear"`
	CustomerID          string `mapstructure:"customerId"`
	Default             bool   `mapstructure:"default"`
	ImageURL            string `mapstructure:"imageUrl"`

	CardType string `mapstructure:"-"`
	Last4    string `mapstructure:"-"`

	Attributes Attributes `mapstructure:"-"`
}

func NewAndroidPayCard(attrs Attributes) *AndroidPayCard {
	a := &AndroidPayCard{Attributes: attrs}
	decodeAttributes(attrs, a)
	a.CardType = a.VirtualCardType
	a.Last4 = a.VirtualCardLast4
	return a
}

func (a *AndroidPayCard) Kind() PaymentMethodKind { return PaymentMethodKindAndroidPayCard }
func (a *AndroidPayCard) Identifier() string      { return a.Token }
func (a *AndroidPayCard) Raw() Attributes         { return a.Attributes }
func (a *AndroidPayCard) sealed()                 {}

type CoinbaseAccount struct {
	Token      string `mapstructure:"token"`
	UserID     string `mapstructure:"userId"`
	UserEmail  string `mapstructure:"userEmail"`
	UserName   string `mapstructure:"userName"`
	CustomerID string `mapstructure:"customerId"`
	Default    bool   `mapstructure:"default"`
	ImageURL   string `mapstructure:"imageUrl"`

	Attributes Attributes `mapstructure:"-"`
}

func NewCoinbaseAccount(attrs Attributes) *CoinbaseAccount {
	c := &CoinbaseAccount{Attributes: attrs}
	decodeAttributes(attrs, c)
	return c
}

func (c *CoinbaseAccount) Kind() PaymentMethodKind { return PaymentMethodKindCoinbaseAccount }
func (c *CoinbaseAccount) Identifier() string      { return c.Token }
func (c *CoinbaseAccount) Raw() Attributes         { return c.Attributes }
func (c *CoinbaseAccount) sealed()                 {}

// PaymentMethodNonce is a single-use reference to a payment method that has not
// been vaulted.
type PaymentMethodNonce struct {
	Nonce            string     `mapstructure:"nonce"`
	Type             string     `mapstructure:"type"`
	Default          bool       `mapstructure:"default"`
	IsLocked         bool       `mapstructure:"isLocked"`
	Consumed         bool       `mapstructure:"consumed"`
	Details          Attributes `mapstructure:"details"`
	ThreeDSecureInfo Attributes `mapstructure:"threeDSecureInfo"`

	Attributes Attributes `mapstructure:"-"`
}

func NewPaymentMethodNonce(attrs Attributes) *PaymentMethodNonce {
	n := &PaymentMethodNonce{Attributes: attrs}
	decodeAttributes(attrs, n)
	return n
}

func (n *PaymentMethodNonce) Kind() PaymentMethodKind { return PaymentMethodKindNonce }
func (n *PaymentMethodNonce) Identifier() string      { return n.Nonce }
func (n *PaymentMethodNonce) Raw() Attributes         { return n.Attributes }
func (n *PaymentMethodNonce) sealed()                 {}

type UsBankAccount struct {
	Token             string     `mapstructure:"token"`
	RoutingNumber     string     `mapstructure:"routingNumber"`
	Last4             string     `mapstructure:"last4"`
	AccountType       string     `mapstructure:"accountType"`
	AccountHolderName string     `mapstructure:"accountHolderName"`
	BankName          string     `mapstructure:"bankName"`
	OwnershipType     string     `mapstructure:"ownershipType"`
	Verified          bool       `mapstructure:"verified"`
	CustomerID        string     `mapstructure:"customerId"`
	Default           bool       `mapstructure:"default"`
	ImageURL          string     `mapstructure:"imageUrl"`
	AchMandate        Attributes `mapstructure:"achMandate"`

	Attributes Attributes `mapstructure:"-"`
}

func NewUsBankAccount(attrs Attributes) *UsBankAccount {
	u := &UsBankAccount{Attributes: attrs}
	decodeAttributes(attrs, u)
	return u
}

func (u *UsBankAccount) Kind() PaymentMethodKind { return PaymentMethodKindUsBankAccount }
func (u *UsBankAccount) Identifier() string      { return u.Token }
func (u *UsBankAccount) Raw() Attributes         { return u.Attributes }
func (u *UsBankAccount) sealed()                 {}

type VenmoAccount struct {
	Token             string `mapstructure:"token"`
	Username          string `mapstructure:"username"`
	VenmoUserID       string `mapstructure:"venmoUserId"`
	SourceDescription string `mapstructure:"sourceDescription"`
	CustomerID        string `mapstructure:"customerId"`
	Default           bool   `mapstructure:"default"`
	ImageURL          string `mapstructure:"imageUrl"`

	Attributes Attributes `mapstructure:"-"`
}

func NewVenmoAccount(attrs Attributes) *VenmoAccount {
	v := &VenmoAccount{Attributes: attrs}
	decodeAttributes(attrs, v)
	return v
}

func (v *VenmoAccount) Kind() PaymentMethodKind { return PaymentMethodKindVenmoAccount }
func (v *VenmoAccount) Identifier() string      { return v.Token }
func (v *VenmoAccount) Raw() Attributes         { return v.Attributes }
func (v *VenmoAccount) sealed()                 {}

type VisaCheckoutCard struct {
	Token           string `mapstructure:"token"`
	CallID          string `mapstructure:"callId"`
	Bin             string `mapstructure:"bin"`
	Last4           string `mapstructure:"last4"`
	CardType        string `mapstructure:"cardType"`
	CardholderName  string `mapstructure:"cardholderName"`
	ExpirationMonth string `mapstructure:"expirationMonth"`
	ExpirationYear  string `mapstructure:"expirationYear"`
	CustomerID      string `mapstructure:"customerId"`
	Default         bool   `mapstructure:"default"`
	Expired         bool   `mapstructure:"expired"`
	ImageURL        string `mapstructure:"imageUrl"`

	MaskedNumber   string `mapstructure:"-"`
	ExpirationDate string `mapstructure:"-"`

	Attributes Attributes `mapstructure:"-"`
}

func NewVisaCheckoutCard(attrs Attributes) *VisaCheckoutCard {
	v := &VisaCheckoutCard{Attributes: attrs}
	decodeAttributes(attrs, v)
	v.MaskedNumber = maskedNumber(v.Bin, v.Last4)
	v.ExpirationDate = expirationDate(v.ExpirationMonth, v.ExpirationYear)
	return v
}

func (v *VisaCheckoutCard) Kind() PaymentMethodKind { return PaymentMethodKindVisaCheckoutCard }
func (v *VisaCheckoutCard) Identifier() string      { return v.Token }
func (v *VisaCheckoutCard) Raw() Attributes         { return v.Attributes }
func (v *VisaCheckoutCard) sealed()                 {}

type MasterpassCard struct {
	Token           string `mapstructure:"token"`
	Bin             string `mapstructure:"bin"`
	Last4           string `mapstructure:"last4"`
	CardType        string `mapstructure:"cardType"`
	CardholderName  string `mapstructure:"cardholderName"`
	ExpirationMonth string `mapstructure:"expirationMonth"`
	ExpirationYear  string `mapstructure:"expirationYear"`
	CustomerID      string `mapstructure:"customerId"`
	Default         bool   `mapstructure:"default"`
	Expired         bool   `mapstructure:"expired"`
	ImageURL        string `mapstructure:"imageUrl"`

	MaskedNumber   string `mapstructure:"-"`
	ExpirationDate string `mapstructure:"-"`

	Attributes Attributes `mapstructure:"-"`
}

func NewMasterpassCard(attrs Attributes) *MasterpassCard {
	m := &MasterpassCard{Attributes: attrs}
	decodeAttributes(attrs, m)
	m.MaskedNumber = maskedNumber(m.Bin, m.Last4)
	m.ExpirationDate = expirationDate(m.ExpirationMonth, m.ExpirationYear)
	return m
}

func (m *MasterpassCard) Kind() PaymentMethodKind { return PaymentMethodKindMasterpassCard }
func (m *MasterpassCard) Identifier() string      { return m.Token }
func (m *MasterpassCard) Raw() Attributes         { return m.Attributes }
func (m *MasterpassCard) sealed()                 {}

// UnknownPaymentMethod wraps a whole response none of the known variants matched.
type UnknownPaymentMethod struct {
	Token    string
	ImageURL string

	Attributes Attributes
}

// NewUnknownPaymentMethod wraps response. The token, when present, is read from the
// first nested object in key order.
func NewUnknownPaymentMethod(response Attributes) *UnknownPaymentMethod {
	u := &UnknownPaymentMethod{
		ImageURL:   UnknownPaymentMethodImageURL,
		Attributes: response,
	}

	keys := make([]string, 0, len(response))
	for k := range response {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		nested, ok := asAttributes(response[k])
		if !ok {
			continue
		}
		if token, ok := nested["token"].(string); ok {
			u.Token = token
		}
		break
	}
	return u
}

func (u *UnknownPaymentMethod) Kind() PaymentMethodKind { return PaymentMethodKindUnknown }
func (u *UnknownPaymentMethod) Identifier() string      { return u.Token }
func (u *UnknownPaymentMethod) Raw() Attributes         { return u.Attributes }
func (u *UnknownPaymentMethod) sealed()                 {}

// decodeAttributes fills the typed fields of out. The processor is loose with scalar
// types (e.g. months as numbers), so decoding is weakly typed and mismatches are left
// at their zero value; the raw map always stays available.
func decodeAttributes(attrs Attributes, out any) {
	if len(attrs) == 0 {
		return
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return
	}
	_ = dec.Decode(map[string]any(attrs))
}

func asAttributes(v any) (Attributes, bool) {
	switch m := v.(type) {
	case Attributes:
		return m, true
	case map[string]any:
		return Attributes(m), true
	default:
		return nil, false
	}
}

func maskedNumber(bin, last4 string) string {
	return bin + "******" + last4
}

func expirationDate(month, year string) string {
	return month + "/" + year
}
