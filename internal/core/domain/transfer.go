package domain

// ValidateTransferAmount enforces the zero/negative policy guard on a
// transfer. force bypasses this guard so privileged callers can reverse or
// correct a transfer with a negative amount; the solvency check is applied
// separately and is never bypassed.
func ValidateTransferAmount(amount int64, force bool) error {
	if force {
		return nil
	}
	if amount == 0 {
		return Forbidden("Cannot send zero money")
	}
	if amount < 0 {
		return Forbidden("You cannot pay negative money")
	}
	return nil
}
