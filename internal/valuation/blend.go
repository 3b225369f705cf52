package valuation

// Blend combines the three valuations with the configured fixed weights.
// A Graham number of exactly zero is replaced by the DCF value before
// blending. No normalization, no bounds checking.
func (c *Calculator) Blend(dcf, graham, monteCarlo float64) float64 {
	if graham == 0 {
		graham = dcf
	}
	return c.weights.DCF*dcf + c.weights.Graham*graham + c.weights.MonteCarlo*monteCarlo
}
