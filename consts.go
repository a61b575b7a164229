package arb

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	maxUint32 = 1<<32 - 1

	limbBits = 32
	limbMask = 1<<limbBits - 1

	// log2Scale is the fixed-point scale of UBig.Log2Accurate: the result
	// approximates log2(x) * log2Scale with 24 fractional bits. This is a
	// property of the squaring schedule, not a tunable.
	log2Bits  = 24
	log2Scale = 1 << log2Bits
)
