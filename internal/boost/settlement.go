package boost

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformFeeRate is the fixed cut the platform retains from every paid
// boost. Policy constant, not configurable per plan.
var PlatformFeeRate = decimal.RequireFromString("0.10")

// DefaultRefundReason is recorded when an administrator refunds a boost
// without giving a reason.
const DefaultRefundReason = "Refund processed by administrator"

// SplitFee divides a boost price into the platform fee and the net
// revenue. The fee is rounded to cents and the net is the exact
// remainder, so fee + net always equals price.
func SplitFee(price decimal.Decimal) (fee, net decimal.Decimal) {
	fee = price.Mul(PlatformFeeRate).Round(2)
	net = price.Sub(fee)
	return fee, net
}

// RemainingDays returns how many whole days of promotion are left at the
// given instant: max(0, ceil(expiry − now)). A partially elapsed day
// still counts as remaining.
func RemainingDays(expiry, now time.Time) int {
	if !expiry.After(now) {
		return 0
	}
	d := expiry.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
