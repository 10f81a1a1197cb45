package resolve

// TokenSource indicates where the effective token was found.
type TokenSource string

const (
	SourceRecord  TokenSource = "record"
	SourceDomain  TokenSource = "domain"
	SourceProfile TokenSource = "profile"
	SourceNone    TokenSource = "none"
)

// tokenProvider attempts to provide a token. Returns empty when the
// source has nothing to offer.
type tokenProvider func() (token string, source TokenSource)

// resolveToken walks the providers in precedence order and returns the
// first non-empty token: repository record, then domain table, then
// profile.
func resolveToken(providers ...tokenProvider) (string, TokenSource) {
	for _, provider := range providers {
		if token, source := provider(); token != "" {
			return token, source
		}
	}

	return "", SourceNone
}

func recordToken(token string) tokenProvider {
	return func() (string, TokenSource) {
		return token, SourceRecord
	}
}

func domainToken(tokens map[string]string, domain string) tokenProvider {
	return func() (string, TokenSource) {
		return tokens[domain], SourceDomain
	}
}

func profileToken(token string) tokenProvider {
	return func() (string, TokenSource) {
		return token, SourceProfile
	}
}
