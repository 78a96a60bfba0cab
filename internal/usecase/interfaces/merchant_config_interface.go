package interfaces

// IMerchantConfig provides the merchant-scoped URL prefix, e.g. /merchants/{id}.
type IMerchantConfig interface {
	BaseMerchantPath() string
}
