package domain

// All monetary amounts are int64 cents. Rounding is half-up on the cent,
// done in integer arithmetic so splits always balance exactly.

// bpsDenominator: commission rates are expressed in basis points (1000 = 10%).
const bpsDenominator = 10000

// TicketPrice derives the frozen per-ticket price: round(itemValue/itemCount)
// to the cent, half-up. itemCount must be >= 1.
func TicketPrice(itemValue int64, itemCount int) int64 {
	n := int64(itemCount)
	return (itemValue + n/2) / n
}

// Split divides a gross amount into platform commission and seller net.
// commission = round(amount * rateBps / 10000), net = amount - commission,
// so commission + net == amount holds for every input.
func Split(amount, rateBps int64) (commission, net int64) {
	commission = (amount*rateBps + bpsDenominator/2) / bpsDenominator
	return commission, amount - commission
}
