package validate_discount

// ValidateDiscountRequest HTTP request model
type ValidateDiscountRequest struct {
	Code string `json:"code"`
}
