// Marquee
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <http://www.gnu.org/licenses/>.

package sentiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

const (
	DefaultC             = 1.0
	DefaultMaxIterations = 2000
	gradientTolerance    = 1e-4
)

// LogisticRegression is a binary L2-regularized linear classifier.
type LogisticRegression struct {
	Weights   []float64
	Intercept float64
}

// Decision returns the signed distance of x from the decision boundary.
// Positive values predict the second class.
func (lr *LogisticRegression) Decision(x SparseVector) float64 {
	return x.Dot(lr.Weights) + lr.Intercept
}

// Probability returns the estimated probability of the second class.
func (lr *LogisticRegression) Probability(x SparseVector) float64 {
	return sigmoid(lr.Decision(x))
}

// fitLogistic minimizes C*sum(logloss) + ||w||^2/2 with L-BFGS. The
// intercept is not penalized. Reaching maxIter without converging keeps the
// last iterate.
func fitLogistic(xs []SparseVector, ys []Label, features int, c float64, maxIter int) (*LogisticRegression, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched samples: %d vectors, %d labels", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, errors.New("no samples")
	}

	signs := make([]float64, len(ys))
	for i, y := range ys {
		signs[i] = -1
		if y == Positive {
			signs[i] = 1
		}
	}

	dim := features + 1
	margins := make([]float64, len(xs))
	margin := func(params []float64) {
		w, b := params[:features], params[features]
		for i, x := range xs {
			margins[i] = signs[i] * (x.Dot(w) + b)
		}
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			margin(params)
			var loss float64
			for _, m := range margins {
				loss += logLoss(m)
			}
			w := params[:features]
			return c*loss + 0.5*floats.Dot(w, w)
		},
		Grad: func(grad, params []float64) {
			margin(params)
			for i := range grad {
				grad[i] = 0
			}
			copy(grad[:features], params[:features])
			for i, x := range xs {
				// d/dz log(1+exp(-y*z)) = -y * sigmoid(-y*z)
				g := -c * signs[i] * sigmoid(-margins[i])
				for k, idx := range x.Indices {
					grad[idx] += g * x.Values[k]
				}
				grad[features] += g
			}
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: gradientTolerance,
		MajorIterations:   maxIter,
	}

	result, err := optimize.Minimize(problem, make([]float64, dim), settings, &optimize.LBFGS{})
	if result == nil {
		return nil, fmt.Errorf("optimizer failed: %w", err)
	}
	if err != nil {
		log.Debug().Err(err).Msg("optimizer stopped early, using last location")
	}
	if floats.HasNaN(result.X) || math.IsInf(result.F, 0) {
		return nil, errors.New("optimizer diverged")
	}

	log.Debug().
		Str("status", result.Status.String()).
		Int("iterations", result.Stats.MajorIterations).
		Float64("loss", result.F).
		Msg("fitted logistic regression")

	return &LogisticRegression{
		Weights:   append([]float64(nil), result.X[:features]...),
		Intercept: result.X[features],
	}, nil
}

// logLoss is log(1+exp(-m)) computed without overflow.
func logLoss(m float64) float64 {
	if m > 0 {
		return math.Log1p(math.Exp(-m))
	}
	return -m + math.Log1p(math.Exp(m))
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
