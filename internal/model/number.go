package model

import (
	"math/big"

	"github.com/deppfellow/hello-backend/internal/validation"
)

// NumberRequest carries an integer path parameter of any size, up to 4300
// digits. ID keeps the raw text; Value is set once Validate has parsed it
// as base 10.
type NumberRequest struct {
	ID string `param:"id" validate:"required,max=4300"`

	value *big.Int
}

func (r *NumberRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	value, ok := new(big.Int).SetString(r.ID, 10)
	if !ok {
		return validation.CustomValidationErrors{{Field: "id", Message: "must be an integer"}}
	}

	r.value = value
	return nil
}

// Value is the parsed ID. It is nil before a successful Validate.
func (r *NumberRequest) Value() *big.Int {
	return r.value
}

// DoubleResponse is the body of GET /api/multiply/:id. The value is
// encoded as a plain JSON number whatever its size.
type DoubleResponse struct {
	DoubledValue *big.Int `json:"doubled_value"`
}

// HalfResponse is the body of GET /api/divide/:id.
type HalfResponse struct {
	HalfValue float64 `json:"half_value"`
}
