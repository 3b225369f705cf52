package valuation

import "math"

// MonteCarloValue simulates geometric random-walk price paths and returns
// the arithmetic mean of the terminal prices. Each path draws one annual
// log-return per horizon year from N(drift, volatility); the terminal
// price is currentPrice * exp(sum of log-returns).
//
// Output depends on the calculator's random source; see SetRand.
func (c *Calculator) MonteCarloValue(currentPrice float64) float64 {
	sum := 0.0
	for i := 0; i < c.mc.Simulations; i++ {
		logReturn := 0.0
		for y := 0; y < c.mc.HorizonYears; y++ {
			logReturn += c.rng.NormFloat64()*c.mc.Volatility + c.mc.Drift
		}
		sum += currentPrice * math.Exp(logReturn)
	}
	return sum / float64(c.mc.Simulations)
}
