package features

import (
	"strings"
	"testing"
)

// allFeatureKeys is the fixed superset the extractor must emit for any input.
var allFeatureKeys = []string{
	"length_url", "length_hostname", "nb_dots", "nb_hyphens", "nb_at", "nb_qm",
	"nb_and", "nb_or", "nb_eq", "nb_underscore", "nb_tilde", "nb_percent",
	"nb_slash", "nb_star", "nb_colon", "nb_com", "nb_www", "nb_dslash",
	"http_in_path", "https_token", "ratio_digits_url", "ratio_digits_host",
	"punycode", "port", "tld_in_path", "tld_in_subdomain", "nb_subdomains",
	"prefix_suffix", "random_domain", "shortening_service", "path_extension",
	"phish_hints", "abnormal_subdomain", "domain_in_brand",
	"brand_in_subdomain", "brand_in_path",
}

func TestExtract_AllKeysPresentForAnyInput(t *testing.T) {
	inputs := []string{
		"",
		"http://example.com",
		"not a url at all",
		"::::%%%",
		strings.Repeat("a", 5000),
		"https://sub.domain.example.co.uk:8443/path?q=1&r=2",
	}

	for _, input := range inputs {
		got := Extract(input)
		if len(got) != len(allFeatureKeys) {
			t.Errorf("Extract(%q) returned %d features, want %d", input, len(got), len(allFeatureKeys))
		}
		for _, key := range allFeatureKeys {
			if _, ok := got[key]; !ok {
				t.Errorf("Extract(%q) missing feature %q", input, key)
			}
		}
	}
}

func TestExtract_EmptyString(t *testing.T) {
	got := Extract("")

	if got["length_url"] != 0 {
		t.Errorf("length_url = %v, want 0", got["length_url"])
	}
	if got["ratio_digits_url"] != 0.0 {
		t.Errorf("ratio_digits_url = %v, want 0.0", got["ratio_digits_url"])
	}
	if got["ratio_digits_host"] != 0.0 {
		t.Errorf("ratio_digits_host = %v, want 0.0", got["ratio_digits_host"])
	}
	// No "//" anywhere, so the scheme adjustment drives this negative.
	if got["nb_dslash"] != -1 {
		t.Errorf("nb_dslash = %v, want -1", got["nb_dslash"])
	}
}

func TestExtract_Counts(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want map[string]float64
	}{
		{
			name: "plain url",
			url:  "http://example.com/path",
			want: map[string]float64{
				"length_url":      23,
				"length_hostname": 11,
				"nb_dots":         1,
				"nb_slash":        3,
				"nb_dslash":       0,
				"nb_com":          1,
				"nb_colon":        1,
				"https_token":     0,
				"http_in_path":    0,
			},
		},
		{
			name: "query with params",
			url:  "http://example.com/a?b=1&c=2",
			want: map[string]float64{
				"nb_qm":  1,
				"nb_and": 1,
				"nb_eq":  2,
			},
		},
		{
			name: "schemeless input keeps literal counts",
			url:  "example.com/login.php",
			want: map[string]float64{
				"nb_dslash":      -1,
				"nb_colon":       0,
				"path_extension": 1,
				"tld_in_path":    1,
				"phish_hints":    1,
			},
		},
		{
			name: "www and special characters",
			url:  "http://www.ex-ample.com/~user_name/%20?x=*|@",
			want: map[string]float64{
				"nb_www":        1,
				"nb_hyphens":    1,
				"nb_tilde":      1,
				"nb_underscore": 1,
				"nb_percent":    1,
				"nb_star":       1,
				"nb_or":         1,
				"nb_at":         1,
				"prefix_suffix": 1,
			},
		},
		{
			name: "http token inside path",
			url:  "http://example.com/redirect/http/foo",
			want: map[string]float64{
				"http_in_path": 1,
			},
		},
		{
			name: "https scheme sets token",
			url:  "https://example.com",
			want: map[string]float64{
				"https_token": 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.url)
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("Extract(%q)[%q] = %v, want %v", tt.url, key, got[key], want)
				}
			}
		})
	}
}

func TestExtract_DigitRatios(t *testing.T) {
	got := Extract("http://abc123.com")

	// host "abc123.com": 3 digits of 10 characters
	if got["ratio_digits_host"] != 0.3 {
		t.Errorf("ratio_digits_host = %v, want 0.3", got["ratio_digits_host"])
	}
	// whole string: 3 digits of 17 characters
	want := 3.0 / 17.0
	if got["ratio_digits_url"] != want {
		t.Errorf("ratio_digits_url = %v, want %v", got["ratio_digits_url"], want)
	}

	for _, key := range []string{"ratio_digits_url", "ratio_digits_host"} {
		if got[key] < 0 || got[key] > 1 {
			t.Errorf("%s = %v, want value in [0,1]", key, got[key])
		}
	}
}

func TestExtract_Punycode(t *testing.T) {
	if got := Extract("http://xn--e1awd7f.com/")["punycode"]; got != 1 {
		t.Errorf("punycode = %v for punycode host, want 1", got)
	}
	if got := Extract("http://example.com/")["punycode"]; got != 0 {
		t.Errorf("punycode = %v for plain host, want 0", got)
	}
}

func TestExtract_Port(t *testing.T) {
	if got := Extract("http://example.com:8080/")["port"]; got != 8080 {
		t.Errorf("port = %v, want 8080", got)
	}
	if got := Extract("http://example.com/")["port"]; got != 0 {
		t.Errorf("port = %v, want 0", got)
	}
}

func TestExtract_ShorteningService(t *testing.T) {
	tests := []struct {
		url  string
		want float64
	}{
		{"http://bit.ly/abc", 1},
		{"https://tinyurl.com/xyz", 1},
		{"http://bit.ly:8080/abc", 1}, // port is stripped before the lookup
		{"http://example.com/", 0},
		{"http://notbit.ly.example.com/", 0},
	}

	for _, tt := range tests {
		if got := Extract(tt.url)["shortening_service"]; got != tt.want {
			t.Errorf("shortening_service for %q = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtract_PhishHints(t *testing.T) {
	tests := []struct {
		url  string
		want float64
	}{
		{"http://secure-login.example.com/login", 2}, // secure + login
		{"http://example.com/LOGIN", 1},              // case-insensitive
		{"http://login.login.example.com/", 1},       // one per distinct keyword
		{"http://paypal.example.com/verify?account=1", 3},
		{"http://example.com/", 0},
	}

	for _, tt := range tests {
		if got := Extract(tt.url)["phish_hints"]; got != tt.want {
			t.Errorf("phish_hints for %q = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtract_RandomDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want float64
	}{
		{"long consonant-heavy host", "http://xkcdqrstvwxyzzz.com/", 1},
		{"long host with normal vowels", "http://averagebananastore.com/", 0},
		{"short host is never random", "http://xzq.io/", 0},
		{"long digit-heavy host", "http://a1b2c3d4e5f6g7h8.com/", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.url)["random_domain"]; got != tt.want {
				t.Errorf("random_domain for %q = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtract_Subdomains(t *testing.T) {
	got := Extract("http://a.b.c.d.example.com/")
	if got["nb_subdomains"] != 5 {
		t.Errorf("nb_subdomains = %v, want 5", got["nb_subdomains"])
	}
	if got["abnormal_subdomain"] != 1 {
		t.Errorf("abnormal_subdomain = %v, want 1", got["abnormal_subdomain"])
	}

	got = Extract("http://www.example.com/")
	if got["abnormal_subdomain"] != 0 {
		t.Errorf("abnormal_subdomain = %v, want 0", got["abnormal_subdomain"])
	}
}

func TestExtract_BrandStubsAlwaysZero(t *testing.T) {
	got := Extract("http://paypal.secure-bank.com/paypal/login")
	for _, key := range []string{"domain_in_brand", "brand_in_subdomain", "brand_in_path"} {
		if got[key] != 0 {
			t.Errorf("%s = %v, want constant 0", key, got[key])
		}
	}
}
