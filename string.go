package randsource

// Base64Runes are all the runes allowed in standard and url safe base64
// encodings.
//
// This is a common, safe to use set of runes to be used with String.
const Base64Runes = `ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_+/=`

// StringArgs defines the args used by String.
type StringArgs struct {
	// Required. If MaxLength <= MinLength it will cause panic.
	MaxLength int

	// Optional. Default is 0, which means it could generate empty strings.
	// If MinLength < 0 or MinLength >= MaxLength it will cause panic.
	MinLength int

	// Optional. If empty []rune(Base64Runes) will be used instead.
	Runes []rune
}

// String generates a random string with length [MinLength, MaxLength), and
// all characters limited to Runes, each drawn with replacement.
//
// It could be used to help implement testing/quick.Generator interface.
func String(src Source, args StringArgs) string {
	runes := args.Runes
	if len(runes) == 0 {
		runes = []rune(Base64Runes)
	}
	n := src.IntN(args.MaxLength-args.MinLength) + args.MinLength
	ret := make([]rune, n)
	for i := range ret {
		ret[i] = runes[src.IntN(len(runes))]
	}
	return string(ret)
}
