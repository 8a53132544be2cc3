package roundtrip

import "github.com/avdva/binfloat"

// DefaultCases returns the built-in half/single expectations.
func DefaultCases() []Case {
	h, s := binfloat.Half, binfloat.Single
	groups := []struct {
		name  string
		cases []Case
	}{
		{"zeros", []Case{
			RoundTrip("0.0h", 0x0000, h, s),
			RoundTrip("-0.0h", 0x8000, h, s),
			Convert("0.0h", 0x0000, h, s, 0x00000000, binfloat.Exact),
			Convert("-0.0h", 0x8000, h, s, 0x80000000, binfloat.Exact),
			Convert("0.0", 0x00000000, s, h, 0x0000, binfloat.Exact),
			Convert("-0.0", 0x80000000, s, h, 0x8000, binfloat.Exact),
		}},
		{"infinities", []Case{
			RoundTrip("inf", 0x7c00, h, s),
			RoundTrip("-inf", 0xfc00, h, s),
			Convert("inf", 0x7c00, h, s, 0x7f800000, binfloat.Exact),
			Convert("-inf", 0xfc00, h, s, 0xff800000, binfloat.Exact),
			Convert("inf", 0x7f800000, s, h, 0x7c00, binfloat.Exact),
			Convert("-inf", 0xff800000, s, h, 0xfc00, binfloat.Exact),
		}},
		{"nans", []Case{
			RoundTrip("snanh", 0x7c01, h, s),
			RoundTrip("-snanh", 0xfc01, h, s),
			RoundTrip("snanh(0x7)", 0x7c07, h, s),
			RoundTrip("qnanh", 0x7e01, h, s),
			Convert("snanh", 0x7c01, h, s, 0x7f802000, binfloat.Exact),
			Convert("-snanh", 0xfc01, h, s, 0xff802000, binfloat.Exact),
			Convert("snanh(0x7)", 0x7c07, h, s, 0x7f80e000, binfloat.Exact),
			Convert("-snanh(0x7)", 0xfc07, h, s, 0xff80e000, binfloat.Exact),
			Convert("qnanh", 0x7e01, h, s, 0x7fc02000, binfloat.Exact),
			Convert("qnan(0x77)", 0x7fc00077, s, h, 0x7e00, binfloat.NaNPayloadTruncated),
			Convert("snan(0x1)", 0x7f800001, s, h, 0x7c01, binfloat.NaNPayloadTruncated),
		}},
		{"subnormals", []Case{
			RoundTrip("min subnormal", 0x0001, h, s),
			RoundTrip("max subnormal", 0x03ff, h, s),
			RoundTrip("-max subnormal", 0x83ff, h, s),
			Convert("min subnormal", 0x0001, h, s, 0x33800000, binfloat.Exact),
			Convert("max subnormal", 0x03ff, h, s, 0x387fc000, binfloat.Exact),
			Convert("half min subnormal", 0x33000000, s, h, 0x0000, binfloat.Underflow),
			Convert("min single subnormal", 0x00000001, s, h, 0x0000, binfloat.Underflow),
			Convert("max subnormal + 1/2 ulp", 0x387fe000, s, h, 0x0400, binfloat.Rounded),
		}},
		{"normals", []Case{
			RoundTrip("1.0h", 0x3c00, h, s),
			RoundTrip("1/3", 0x3555, h, s),
			RoundTrip("max", 0x7bff, h, s),
			RoundTrip("min normal", 0x0400, h, s),
			Convert("1.0h", 0x3c00, h, s, 0x3f800000, binfloat.Exact),
			Convert("max", 0x7bff, h, s, 0x477fe000, binfloat.Exact),
			Convert("1 + 1/2 ulp", 0x3f801000, s, h, 0x3c00, binfloat.Rounded),
			Convert("1 + 3/2 ulp", 0x3f803000, s, h, 0x3c02, binfloat.Rounded),
			Convert("65520", 0x477ff000, s, h, 0x7c00, binfloat.Overflow),
			Convert("-65536", 0xc7800000, s, h, 0xfc00, binfloat.Overflow),
		}},
	}
	var result []Case
	for _, g := range groups {
		for _, c := range g.cases {
			c.Group = g.name
			result = append(result, c)
		}
	}
	return result
}
