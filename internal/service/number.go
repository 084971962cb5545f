package service

import (
	"context"
	"errors"
	"math"
	"math/big"

	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/rs/zerolog"
)

// ErrHalfOutOfRange is returned by Halve when the result does not fit in a
// float64.
var ErrHalfOutOfRange = errors.New("half does not fit in a float64")

// NumberService doubles and halves integers of any size.
type NumberService struct {
	server *server.Server
}

func NewNumberService(s *server.Server) *NumberService {
	return &NumberService{server: s}
}

// Double returns value * 2 as a new integer; value is left unchanged.
func (n *NumberService) Double(ctx context.Context, value *big.Int) *big.Int {
	zerolog.Ctx(ctx).Debug().Str("operation", "multiply").Stringer("id", value).Msg("doubling")
	return new(big.Int).Lsh(value, 1)
}

// Halve returns value / 2 without truncation, so odd inputs give a .5
// result. The quotient is rounded to the nearest float64.
func (n *NumberService) Halve(ctx context.Context, value *big.Int) (float64, error) {
	zerolog.Ctx(ctx).Debug().Str("operation", "divide").Stringer("id", value).Msg("halving")

	half := new(big.Float).SetInt(value)
	half.SetMantExp(half, -1)

	result, _ := half.Float64()
	if math.IsInf(result, 0) {
		return 0, ErrHalfOutOfRange
	}

	return result, nil
}
