package simplify

// DefaultBiometricThreshold is the settlement amount, in minor units, at
// which the app requires biometric step-up authentication before recording a
// payment (₹5000 in paisa). Other components depend on this literal value.
const DefaultBiometricThreshold int64 = 500000

// RequiresBiometric reports whether a settlement of the given amount needs
// biometric confirmation under the default policy threshold.
func RequiresBiometric(amount int64) bool {
	return RequiresBiometricAt(amount, DefaultBiometricThreshold)
}

// RequiresBiometricAt is RequiresBiometric with an explicit threshold.
func RequiresBiometricAt(amount, threshold int64) bool {
	return amount >= threshold
}
