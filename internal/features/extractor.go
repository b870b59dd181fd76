package features

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// shortenerHosts is a small list of known URL shortener hostnames.
var shortenerHosts = map[string]struct{}{
	"bit.ly":      {},
	"tinyurl.com": {},
	"t.co":        {},
	"goo.gl":      {},
	"ow.ly":       {},
	"buff.ly":     {},
	"is.gd":       {},
	"tiny.cc":     {},
	"lc.chat":     {},
	"rebrand.ly":  {},
	"shorturl.at": {},
	"su.pr":       {},
	"trib.al":     {},
}

// suspiciousWords are keywords commonly found in phishing URLs. phish_hints
// counts how many of them appear anywhere in the lowercased URL.
var suspiciousWords = []string{
	"login", "signin", "secure", "verify", "update",
	"account", "confirm", "bank", "paypal", "ebay",
}

var (
	// ".<2-4 letters>" at a segment boundary; a heuristic, not a real TLD check.
	tldInPathRE = regexp.MustCompile(`\.[a-z]{2,4}($|/)`)
	tldInHostRE = regexp.MustCompile(`\.[a-z]{2,4}`)
	pathExtRE   = regexp.MustCompile(`\.(php|asp|aspx|jsp|html|cfm|cgi)$`)
)

// Extract computes the superset of lexical features for a raw URL string.
// Not all of these are necessarily consumed by the model; the adapter selects
// the subset named by the model metadata.
//
// The function never fails: any string, including the empty string, yields a
// complete mapping. A scheme is prepended for parsing only; literal character
// counts always run on the original input.
func Extract(rawURL string) map[string]float64 {
	whole := rawURL
	lower := strings.ToLower(rawURL)

	target := rawURL
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		target = "http://" + rawURL
	}

	var host, path string
	if u, err := url.Parse(target); err == nil {
		host = strings.ToLower(u.Host)
		path = u.Path
	}
	hostNoPort := host
	if i := strings.LastIndex(host, ":"); i >= 0 {
		hostNoPort = host[:i]
	}
	lowerPath := strings.ToLower(path)

	f := make(map[string]float64, 36)

	f["length_url"] = float64(len(whole))
	f["length_hostname"] = float64(len(host))
	f["nb_dots"] = float64(strings.Count(whole, "."))
	f["nb_hyphens"] = float64(strings.Count(whole, "-"))
	f["nb_at"] = float64(strings.Count(whole, "@"))
	f["nb_qm"] = float64(strings.Count(whole, "?"))
	f["nb_and"] = float64(strings.Count(whole, "&"))
	f["nb_or"] = float64(strings.Count(whole, "|"))
	f["nb_eq"] = float64(strings.Count(whole, "="))
	f["nb_underscore"] = float64(strings.Count(whole, "_"))
	f["nb_tilde"] = float64(strings.Count(whole, "~"))
	f["nb_percent"] = float64(strings.Count(whole, "%"))
	f["nb_slash"] = float64(strings.Count(whole, "/"))
	f["nb_star"] = float64(strings.Count(whole, "*"))
	f["nb_colon"] = float64(strings.Count(whole, ":"))
	f["nb_com"] = float64(strings.Count(lower, ".com"))
	f["nb_www"] = float64(strings.Count(lower, "www"))
	// The scheme normally contributes one "//", so one is subtracted. For
	// inputs without any "//" this goes to -1; the trained model saw the same
	// values, so the behavior is kept as-is.
	f["nb_dslash"] = float64(strings.Count(whole, "//") - 1)
	f["http_in_path"] = boolFeature(strings.Contains(lowerPath, "http"))
	f["https_token"] = boolFeature(strings.Contains(host, "https") || strings.Contains(lower, "https"))

	digits := countDigits(whole)
	digitsHost := countDigits(host)
	f["ratio_digits_url"] = ratio(digits, len(whole))
	f["ratio_digits_host"] = ratio(digitsHost, len(host))

	f["punycode"] = boolFeature(strings.Contains(host, "xn--"))
	f["port"] = float64(hostPort(host))

	f["tld_in_path"] = boolFeature(tldInPathRE.MatchString(lowerPath))
	f["tld_in_subdomain"] = boolFeature(tldInHostRE.MatchString(hostNoPort))

	nbSubdomains := strings.Count(host, ".")
	f["nb_subdomains"] = float64(nbSubdomains)
	f["prefix_suffix"] = boolFeature(strings.Contains(host, "-"))

	vowels := 0
	for _, r := range host {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
	}
	randomDomain := len(host) > 15 &&
		(float64(vowels)/float64(len(host)) < 0.2 || float64(digitsHost)/float64(len(host)) > 0.3)
	f["random_domain"] = boolFeature(randomDomain)

	_, isShortener := shortenerHosts[hostNoPort]
	f["shortening_service"] = boolFeature(isShortener)

	f["path_extension"] = boolFeature(pathExtRE.MatchString(lowerPath))

	hints := 0
	for _, w := range suspiciousWords {
		if strings.Contains(lower, w) {
			hints++
		}
	}
	f["phish_hints"] = float64(hints)

	f["abnormal_subdomain"] = boolFeature(nbSubdomains > 3)

	// Brand detection is not implemented; these are emitted as constant zero
	// so the model always receives its full column set.
	f["domain_in_brand"] = 0
	f["brand_in_subdomain"] = 0
	f["brand_in_path"] = 0

	return f
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(n) / float64(total)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// hostPort returns the numeric port from a host:port string, or 0 when no
// port is present.
func hostPort(host string) int {
	i := strings.LastIndex(host, ":")
	if i < 0 {
		return 0
	}
	port, err := strconv.Atoi(host[i+1:])
	if err != nil {
		return 0
	}
	return port
}
