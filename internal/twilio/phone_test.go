package twilio

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "ten digits", in: "3125551234", want: "+13125551234"},
		{name: "dashes and spaces", in: "312-555-1234", want: "+13125551234"},
		{name: "parens", in: "(312) 555-1234", want: "+13125551234"},
		{name: "eleven with country code", in: "13125551234", want: "+13125551234"},
		{name: "already e164", in: "+13125551234", want: "+13125551234"},
		{name: "e164 non us passes through", in: "+443125551234", want: "+443125551234"},
		{name: "eleven without leading one", in: "23125551234", wantErr: true},
		{name: "too short", in: "555-1234", wantErr: true},
		{name: "empty", in: "   ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhone(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
